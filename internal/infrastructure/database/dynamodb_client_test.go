package database

import "testing"

func TestSettingsFromEnv(t *testing.T) {
	t.Run("local defaults", func(t *testing.T) {
		t.Setenv("AWS_REGION", "")
		t.Setenv("AWS_ACCESS_KEY_ID", "")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "")
		t.Setenv("DYNAMODB_ENDPOINT", "")

		s := settingsFromEnv()
		if s.region != "us-east-1" || s.accessKey != "local" || s.secretKey != "local" {
			t.Fatalf("unexpected defaults: %+v", s)
		}
		if s.endpoint != "" {
			t.Fatalf("expected no endpoint, got %q", s.endpoint)
		}
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("AWS_REGION", "eu-west-2")
		t.Setenv("AWS_ACCESS_KEY_ID", "key")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
		t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

		s := settingsFromEnv()
		if s.region != "eu-west-2" || s.accessKey != "key" || s.secretKey != "secret" || s.endpoint != "http://dynamodb:8000" {
			t.Fatalf("unexpected settings: %+v", s)
		}
	})
}
