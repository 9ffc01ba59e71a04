package logging

import (
	"errors"
	"testing"
)

func TestService(t *testing.T) {
	attr := Service("harvester")
	if attr.Key != FieldService {
		t.Errorf("expected key %q, got %q", FieldService, attr.Key)
	}
	if attr.Value.String() != "harvester" {
		t.Errorf("expected value %q, got %q", "harvester", attr.Value.String())
	}
}

func TestSourceURL(t *testing.T) {
	attr := SourceURL("https://jsonplaceholder.typicode.com/posts")
	if attr.Key != FieldSourceURL {
		t.Errorf("expected key %q, got %q", FieldSourceURL, attr.Key)
	}
	if attr.Value.String() != "https://jsonplaceholder.typicode.com/posts" {
		t.Errorf("unexpected value %q", attr.Value.String())
	}
}

func TestObjectPath(t *testing.T) {
	attr := ObjectPath("raw_data/2025-06-23T10:30:00Z-deadbeef.json")
	if attr.Key != FieldObjectPath {
		t.Errorf("expected key %q, got %q", FieldObjectPath, attr.Key)
	}
	if attr.Value.String() != "raw_data/2025-06-23T10:30:00Z-deadbeef.json" {
		t.Errorf("unexpected value %q", attr.Value.String())
	}
}

func TestBucket(t *testing.T) {
	attr := Bucket("nexusscout-raw-data")
	if attr.Key != FieldBucket {
		t.Errorf("expected key %q, got %q", FieldBucket, attr.Key)
	}
	if attr.Value.String() != "nexusscout-raw-data" {
		t.Errorf("unexpected value %q", attr.Value.String())
	}
}

func TestBackend(t *testing.T) {
	attr := Backend("gcs")
	if attr.Key != FieldBackend {
		t.Errorf("expected key %q, got %q", FieldBackend, attr.Key)
	}
	if attr.Value.String() != "gcs" {
		t.Errorf("unexpected value %q", attr.Value.String())
	}
}

func TestDuration(t *testing.T) {
	attr := Duration(125)
	if attr.Key != FieldDuration {
		t.Errorf("expected key %q, got %q", FieldDuration, attr.Key)
	}
	if attr.Value.Int64() != 125 {
		t.Errorf("expected value 125, got %d", attr.Value.Int64())
	}
}

func TestRecords(t *testing.T) {
	attr := Records(3)
	if attr.Key != FieldRecords {
		t.Errorf("expected key %q, got %q", FieldRecords, attr.Key)
	}
	if attr.Value.Int64() != 3 {
		t.Errorf("expected value 3, got %d", attr.Value.Int64())
	}
}

func TestError(t *testing.T) {
	attr := Error(errors.New("upload failed"))
	if attr.Key != FieldError {
		t.Errorf("expected key %q, got %q", FieldError, attr.Key)
	}
	if attr.Value.String() != "upload failed" {
		t.Errorf("expected value %q, got %q", "upload failed", attr.Value.String())
	}
}
