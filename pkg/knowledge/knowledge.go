// Package knowledge loads structured JSON knowledge documents and flattens
// them into plain text blocks suitable for prepending to a chat prompt.
package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Kind selects which document schema a file is parsed against.
type Kind string

const (
	// KindPII is a taxonomy of included and excluded PII category descriptions.
	KindPII Kind = "pii"
	// KindMQ is a message-queue topic catalog.
	KindMQ Kind = "mq"
)

// LoadError reports a failed knowledge load attempt. The caller's previously
// active knowledge text is never touched by a failed load.
type LoadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s knowledge from %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Pointer-typed fields so a missing required key is distinguishable from an
// empty value after decoding.
type piiDocument struct {
	Descriptions        *[]string `json:"pii_description"`
	ExcludeDescriptions *[]string `json:"exclude_pii_description"`
}

type mqTopic struct {
	BusinessModule *string `json:"business_module"`
	TopicName      *string `json:"topic_name"`
	Publisher      *string `json:"publisher"`
	Remark         *string `json:"remark"`
}

type mqDocument struct {
	Background   *string    `json:"mq_data_background"`
	CurrentState *string    `json:"mq_data_current_state"`
	Technology   *string    `json:"mq_technology"`
	Topics       *[]mqTopic `json:"mq_pub_sub_topics"`
}

// Load reads the file at path, parses it against the schema for kind, and
// renders it into one flattened text block. The whole file is parsed before
// any text is produced; every failure (unreadable file, malformed JSON,
// missing field, wrong type) is reported as a *LoadError.
func Load(kind Kind, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &LoadError{Kind: kind, Path: path, Err: err}
	}

	var text string
	switch kind {
	case KindPII:
		text, err = renderPII(data)
	case KindMQ:
		text, err = renderMQ(data)
	default:
		err = fmt.Errorf("unknown knowledge kind %q", kind)
	}
	if err != nil {
		return "", &LoadError{Kind: kind, Path: path, Err: err}
	}
	return text, nil
}

func renderPII(data []byte) (string, error) {
	var doc piiDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", err
	}
	if doc.Descriptions == nil {
		return "", fmt.Errorf("missing required field %q", "pii_description")
	}
	if doc.ExcludeDescriptions == nil {
		return "", fmt.Errorf("missing required field %q", "exclude_pii_description")
	}

	var b strings.Builder
	b.WriteString("Here is the knowledge about Category of PII (Personal Identifiable Information) :\n")
	for _, desc := range *doc.Descriptions {
		b.WriteString(desc)
		b.WriteString("\n")
	}
	b.WriteString("Here is the knowledge about Category of Non-PII (Personal Identifiable Information) :\n")
	for _, desc := range *doc.ExcludeDescriptions {
		b.WriteString(desc)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func renderMQ(data []byte) (string, error) {
	var doc mqDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", err
	}
	for _, field := range []struct {
		name string
		ok   bool
	}{
		{"mq_data_background", doc.Background != nil},
		{"mq_data_current_state", doc.CurrentState != nil},
		{"mq_technology", doc.Technology != nil},
		{"mq_pub_sub_topics", doc.Topics != nil},
	} {
		if !field.ok {
			return "", fmt.Errorf("missing required field %q", field.name)
		}
	}
	for i, topic := range *doc.Topics {
		for _, field := range []struct {
			name string
			ok   bool
		}{
			{"business_module", topic.BusinessModule != nil},
			{"topic_name", topic.TopicName != nil},
			{"publisher", topic.Publisher != nil},
			{"remark", topic.Remark != nil},
		} {
			if !field.ok {
				return "", fmt.Errorf("topic %d: missing required field %q", i, field.name)
			}
		}
	}

	var b strings.Builder
	b.WriteString("Here is the knowledge about Message sync MQ Pub/Sub :\n")
	b.WriteString(*doc.Background)
	b.WriteString("\n")
	b.WriteString("Here is the knowledge about Message sync MQ Pub/Sub Current State :\n")
	b.WriteString(*doc.CurrentState)
	b.WriteString("\n")
	b.WriteString("Here is the knowledge about Message sync MQ Pub/Sub Technology :\n")
	b.WriteString(*doc.Technology)
	b.WriteString("\n")
	b.WriteString("Here is the knowledge about Message sync MQ Pub/Sub Topics :\n")
	for _, topic := range *doc.Topics {
		b.WriteString("Business Module: ")
		b.WriteString(*topic.BusinessModule)
		b.WriteString("\n")
		b.WriteString("Topic Name or Topic String: ")
		b.WriteString(*topic.TopicName)
		b.WriteString("\n")
		b.WriteString("Publisher: ")
		b.WriteString(*topic.Publisher)
		b.WriteString("\n")
		b.WriteString("Remark: ")
		b.WriteString(*topic.Remark)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String(), nil
}
