package pagination

import (
	"net/url"
	"testing"
)

func TestNormalizeLimit(t *testing.T) {
	t.Parallel()

	if NormalizeLimit(0) != DefaultLimit {
		t.Fatal("zero should use default")
	}
	if NormalizeLimit(-3) != DefaultLimit {
		t.Fatal("negative should use default")
	}
	if NormalizeLimit(1000) != MaxLimit {
		t.Fatal("oversized should clamp to max")
	}
	if NormalizeLimit(10) != 10 {
		t.Fatal("in-range should pass through")
	}
}

func TestFromQuery(t *testing.T) {
	t.Parallel()

	params := FromQuery(url.Values{"limit": {"10"}, "offset": {"30"}})
	if params.Limit != 10 || params.Offset != 30 {
		t.Fatalf("unexpected params: %+v", params)
	}

	params = FromQuery(url.Values{"limit": {"garbage"}, "offset": {"-5"}})
	if params.Limit != DefaultLimit || params.Offset != 0 {
		t.Fatalf("malformed input should normalize: %+v", params)
	}
}
