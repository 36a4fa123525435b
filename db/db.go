package db

import (
	"fmt"
	"strconv"

	"github.com/fortelabs/pcsets/constants"
	"github.com/fortelabs/pcsets/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetExampleMetadatas batch-fetches metadata rows keyed by example name.
// DynamoDB caps BatchGetItem at 100 keys per call; callers page above
// this layer.
func GetExampleMetadatas(names []string) (map[string]model.ExampleMetadata, error) {
	if len(names) > 100 {
		return nil, fmt.Errorf("too many names for one batch: %d", len(names))
	}

	res := make(map[string]model.ExampleMetadata)
	if len(names) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	config := aws.Config{}
	if endpoint := constants.GetMetadataEndpoint(); endpoint != "" {
		config.Region = aws.String("localhost")
		config.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(&config)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	table := constants.GetMetadataTable()
	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("batch get: %w", err)
	}

	for _, v := range dbres.Responses[table] {
		var m model.ExampleMetadata
		if year, ok := v["Year"]; ok && year.N != nil {
			parsed, _ := strconv.ParseUint(*year.N, 10, 32)
			m.Year = uint(parsed)
		}
		if composer, ok := v["Composer"]; ok && composer.S != nil {
			m.Composer = *composer.S
		}
		if piece, ok := v["Piece"]; ok && piece.S != nil {
			m.Piece = *piece.S
		}
		res[*v["PK"].S] = m
	}

	return res, nil
}
