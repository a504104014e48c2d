package contracts

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/business-feed.v1.json
var businessFeedSchemaV1 string

var businessFeedSchema = jsonschema.MustCompileString(
	"business-feed.v1.json",
	businessFeedSchemaV1,
)

// ValidateBusinessFeed checks a raw catalog artifact against the
// BusinessFeed/v1 contract. The seeder refuses to load a document that does
// not conform: the artifact is the sole interface between the scraper and
// every downstream consumer.
func ValidateBusinessFeed(body []byte) error {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("feed document is not valid JSON: %w", err)
	}
	if err := businessFeedSchema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}
