// Package catalog upserts a one-row-per-file summary of decoded songs
// into DynamoDB, the batch-indexing counterpart to blobstore's full-JSON
// cache.
package catalog

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/jsphweid/gptab/config"
	"github.com/jsphweid/gptab/model"
)

// Entry is one file's summary row.
type Entry struct {
	Key      string
	Title    string
	Artist   string
	Tempo    int
	NumBars  int
	NumTrack int
	Format   string
}

func newClient() *dynamodb.DynamoDB {
	cfg := aws.NewConfig().WithRegion(config.AWSRegion())
	if endpoint := config.AWSEndpoint(); endpoint != "" {
		cfg = cfg.WithEndpoint(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		panic("could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(sess)
}

// EntryFromSong summarizes a decoded Song for cataloging under
// blobstore key.
func EntryFromSong(key string, song *model.Song) Entry {
	numBars := 0
	sourceFormat := ""
	if len(song.Tracks) > 0 {
		numBars = len(song.Tracks[0].Bars)
		sourceFormat = song.Tracks[0].SourceFormat
	}
	return Entry{
		Key:      key,
		Title:    song.Title,
		Artist:   song.Artist,
		Tempo:    song.Tempo,
		NumBars:  numBars,
		NumTrack: len(song.Tracks),
		Format:   sourceFormat,
	}
}

// Put upserts a single entry into the configured table.
func Put(e Entry) error {
	client := newClient()
	_, err := client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(config.CatalogTable()),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":       {S: aws.String(e.Key)},
			"Title":    {S: aws.String(e.Title)},
			"Artist":   {S: aws.String(e.Artist)},
			"Tempo":    {N: aws.String(itoa(e.Tempo))},
			"NumBars":  {N: aws.String(itoa(e.NumBars))},
			"NumTrack": {N: aws.String(itoa(e.NumTrack))},
			"Format":   {S: aws.String(e.Format)},
		},
	})
	return err
}

// Get looks up catalog entries for a batch of blobstore keys. DynamoDB's
// BatchGetItem caps a single request at 100 keys.
func Get(keys []string) (map[string]Entry, error) {
	res := make(map[string]Entry)
	if len(keys) == 0 {
		return res, nil
	}
	if len(keys) > 100 {
		return nil, dynamoTooManyKeysError(len(keys))
	}

	var dynKeys []map[string]*dynamodb.AttributeValue
	for _, k := range keys {
		dynKeys = append(dynKeys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(k)},
		})
	}

	client := newClient()
	out, err := client.BatchGetItem(&dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			config.CatalogTable(): {Keys: dynKeys},
		},
	})
	if err != nil {
		return nil, err
	}

	for _, v := range out.Responses[config.CatalogTable()] {
		e := Entry{
			Key:    aws.StringValue(v["PK"].S),
			Title:  aws.StringValue(v["Title"].S),
			Artist: aws.StringValue(v["Artist"].S),
			Format: aws.StringValue(v["Format"].S),
		}
		if v["Tempo"] != nil && v["Tempo"].N != nil {
			e.Tempo = atoi(*v["Tempo"].N)
		}
		if v["NumBars"] != nil && v["NumBars"].N != nil {
			e.NumBars = atoi(*v["NumBars"].N)
		}
		if v["NumTrack"] != nil && v["NumTrack"].N != nil {
			e.NumTrack = atoi(*v["NumTrack"].N)
		}
		res[e.Key] = e
	}
	return res, nil
}
