// Package blobstore stores decoded Song JSON in S3 under a random UUID
// key, so `gptab serve` can return a blob by key without re-decoding. Keys
// do not depend on the file's content: storing the same file twice yields
// two blobs, and nothing here checks for an earlier copy before decoding.
package blobstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/jsphweid/gptab/config"
	"github.com/jsphweid/gptab/model"
)

func newSession() *session.Session {
	cfg := aws.NewConfig().WithRegion(config.AWSRegion())
	if endpoint := config.AWSEndpoint(); endpoint != "" {
		cfg = cfg.WithEndpoint(endpoint).WithS3ForcePathStyle(true)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		panic("could not create AWS session because: " + err.Error())
	}
	return sess
}

// Put writes song as JSON to the configured bucket under a fresh
// random UUID key and returns that key.
func Put(song *model.Song) (string, error) {
	body, err := json.Marshal(song)
	if err != nil {
		return "", err
	}

	key := uuid.New().String() + ".json"
	client := s3.New(newSession())
	_, err = client.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(config.BucketName()),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		return "", fmt.Errorf("putting blob %s: %w", key, err)
	}
	return key, nil
}

// Get reads back a previously cached Song by its blobstore key.
func Get(key string) (*model.Song, error) {
	client := s3.New(newSession())
	out, err := client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(config.BucketName()),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("getting blob %s: %w", key, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, err
	}

	var song model.Song
	if err := json.Unmarshal(body, &song); err != nil {
		return nil, err
	}
	return &song, nil
}
