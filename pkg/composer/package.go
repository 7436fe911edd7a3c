package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RootSentinel is the name Composer gives a root package whose manifest has
// no "name" field.
const RootSentinel = "__root__"

// Link is a single requirement, provide or replace declaration: the target
// package name and the pretty constraint as written in the source file.
type Link struct {
	Target     string
	Constraint string
}

// Links is an ordered list of links. It decodes from a JSON object and keeps
// the object's key order. Targets are folded to lowercase, since Composer
// treats package names case-insensitively. An empty JSON array or null
// decodes to no links, since PHP encodes empty maps as [].
type Links []Link

// UnmarshalJSON implements json.Unmarshaler.
func (l *Links) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		if len(items) != 0 {
			return fmt.Errorf("links must be an object, got array of %d items", len(items))
		}
		*l = nil
		return nil
	}

	om := orderedmap.New[string, string]()
	if err := json.Unmarshal(data, om); err != nil {
		return err
	}

	links := make(Links, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		links = append(links, Link{Target: strings.ToLower(pair.Key), Constraint: pair.Value})
	}
	*l = links
	return nil
}

// MarshalJSON implements json.Marshaler, writing the links as an object in
// list order.
func (l Links) MarshalJSON() ([]byte, error) {
	om := orderedmap.New[string, string](len(l))
	for _, link := range l {
		om.Set(link.Target, link.Constraint)
	}
	return json.Marshal(om)
}

// Package is a package record from composer.json or one entry of a
// composer.lock package list.
type Package struct {
	Name       string `json:"name"`
	Version    string `json:"version,omitempty"` // pretty version; optional for the root
	Require    Links  `json:"require,omitempty"`
	RequireDev Links  `json:"require-dev,omitempty"`
	Provide    Links  `json:"provide,omitempty"`
	Replace    Links  `json:"replace,omitempty"`
}

// Lock holds the two resolved package lists of a composer.lock file.
//
// A nil list means the key was absent (or null) in the file; an empty,
// non-nil list means the key was present with no packages.
type Lock struct {
	ContentHash string    `json:"content-hash,omitempty"`
	Packages    []Package `json:"packages"`
	PackagesDev []Package `json:"packages-dev"`
}
