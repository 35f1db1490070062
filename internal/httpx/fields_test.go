package httpx

import (
	"encoding/json"
	"testing"
)

func TestStringListFromArray(t *testing.T) {
	var list StringList
	if err := json.Unmarshal([]byte(`["Go","MongoDB"]`), &list); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(list) != 2 || list[0] != "Go" || list[1] != "MongoDB" {
		t.Fatalf("unexpected list: %v", list)
	}
}

func TestStringListFromEncodedString(t *testing.T) {
	var list StringList
	if err := json.Unmarshal([]byte(`"[\"Go\",\"MongoDB\"]"`), &list); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(list) != 2 || list[0] != "Go" || list[1] != "MongoDB" {
		t.Fatalf("unexpected list: %v", list)
	}
}

func TestStringListFromPlainString(t *testing.T) {
	var list StringList
	if err := json.Unmarshal([]byte(`"Go"`), &list); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(list) != 1 || list[0] != "Go" {
		t.Fatalf("unexpected list: %v", list)
	}
}

func TestStringListFromEmptyString(t *testing.T) {
	var list StringList
	if err := json.Unmarshal([]byte(`""`), &list); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}
}
