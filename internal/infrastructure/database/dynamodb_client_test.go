package database

import (
	"context"
	"testing"

	appconfig "agencyops/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAWSConfig_StaticCredentials(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), "eu-west-1", "local", "local")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}

func TestConnectDynamoDB_Endpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), appconfig.DynamoDBConfig{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)
}
