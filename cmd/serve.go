package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/gptab"
	"github.com/jsphweid/gptab/blobstore"
	"github.com/jsphweid/gptab/config"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves an HTTP API over the decoder",
	Long:  `Serves an HTTP API over the decoder`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func handleParse(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing multipart file field \"file\"", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "could not read upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	song, err := gptab.Parse(data, header.Filename)
	if err != nil {
		http.Error(w, "could not decode file: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	json.NewEncoder(w).Encode(song)
}

func handleGetSong(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	song, err := blobstore.Get(key)
	if err != nil {
		http.Error(w, "could not load blob: "+err.Error(), http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(song)
}

// Router builds the serve command's route table. Exported so the e2e
// suite can drive it in-process via httptest without binding a port.
func Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", handleParse).Methods("POST")
	router.HandleFunc("/songs/{key}", handleGetSong).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	addr := config.ServeAddr()
	fmt.Printf("listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, Router()))
}
