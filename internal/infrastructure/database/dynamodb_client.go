package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// dynamoSettings is the environment surface of the store connection.
// Defaults target dynamodb-local, which does not validate credentials but
// the AWS SDK still requires them to be present.
type dynamoSettings struct {
	region    string
	accessKey string
	secretKey string
	endpoint  string
}

func settingsFromEnv() dynamoSettings {
	s := dynamoSettings{
		region:    os.Getenv("AWS_REGION"),
		accessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		secretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
	}
	if s.region == "" {
		s.region = "us-east-1"
	}
	if s.accessKey == "" {
		s.accessKey = "local"
	}
	if s.secretKey == "" {
		s.secretKey = "local"
	}
	return s
}

// ConnectDynamoDB creates the DynamoDB client backing the hub's record
// tables.
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

// NewDynamoDBConfigFromEnv builds an AWS config from the environment.
// When DYNAMODB_ENDPOINT is set all DynamoDB calls are routed to it,
// which is how the docker-compose local setup works.
func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	s := settingsFromEnv()

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(s.region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.accessKey, s.secretKey, "")),
	}

	if s.endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: s.endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
