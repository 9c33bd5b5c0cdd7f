package tagsfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nfrund/pinboard/internal/snapshot"
	"github.com/nfrund/pinboard/internal/tagmgr"
)

// TagDisplay represents a tag for display purposes
type TagDisplay struct {
	Name        string                 `json:"name"`
	Value       string                 `json:"value"`
	Label       string                 `json:"label"`
	Domain      string                 `json:"domain"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Position    *int                   `json:"position,omitempty"`
}

// Label turns a tag name into a human readable title,
// e.g. SOCKET_CONNECTED becomes "Socket Connected".
func Label(name string) string {
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.English).String(strings.ToLower(strings.ReplaceAll(name, "_", " ")))
}

func toDisplay(tag tagmgr.Tag) TagDisplay {
	metadata := tag.Metadata()
	if len(metadata) == 0 {
		metadata = nil
	}
	return TagDisplay{
		Name:        tag.Name(),
		Value:       tag.Value(),
		Label:       Label(tag.Name()),
		Domain:      string(tag.Domain()),
		Description: tag.Description(),
		Metadata:    metadata,
	}
}

// DisplayTagsTable writes tags as an aligned table
func DisplayTagsTable(w io.Writer, tags []tagmgr.Tag) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tDOMAIN\tLABEL\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t------\t-----\t-----------")
	for _, tag := range tags {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			tag.Name(),
			tag.Domain(),
			Label(tag.Name()),
			truncateString(tag.Description(), 50))
	}
	return tw.Flush()
}

// DisplayTagsJSON writes tags as a JSON document with a count and the
// statistics of the registry they came from
func DisplayTagsJSON(w io.Writer, tags []tagmgr.Tag, stats tagmgr.RegistryStats) error {
	displays := make([]TagDisplay, len(tags))
	for i, tag := range tags {
		displays[i] = toDisplay(tag)
	}

	output := struct {
		Tags  []TagDisplay         `json:"tags"`
		Count int                  `json:"count"`
		Stats tagmgr.RegistryStats `json:"stats"`
	}{
		Tags:  displays,
		Count: len(displays),
		Stats: stats,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// DisplayTagDetails writes everything known about one registry entry
func DisplayTagDetails(w io.Writer, entry *tagmgr.RegistryEntry, format string) error {
	tag := entry.Tag
	if format == "json" {
		display := toDisplay(tag)
		display.Position = &entry.Position

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(display)
	}

	fmt.Fprintf(w, "Name:        %s\n", tag.Name())
	fmt.Fprintf(w, "Value:       %s\n", tag.Value())
	fmt.Fprintf(w, "Label:       %s\n", Label(tag.Name()))
	fmt.Fprintf(w, "Domain:      %s\n", tag.Domain())
	fmt.Fprintf(w, "Position:    %d\n", entry.Position)
	fmt.Fprintf(w, "Description: %s\n", tag.Description())

	metadata := tag.Metadata()
	if len(metadata) > 0 {
		keys := make([]string, 0, len(metadata))
		for k := range metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintf(w, "Metadata:\n")
		for _, k := range keys {
			fmt.Fprintf(w, "  %s: %v\n", k, metadata[k])
		}
	}
	return nil
}

// DisplayChanges writes a snapshot diff, one line per tag
func DisplayChanges(w io.Writer, changes snapshot.Changes) {
	for _, name := range changes.Added {
		fmt.Fprintf(w, "+ %s\n", name)
	}
	for _, name := range changes.Removed {
		fmt.Fprintf(w, "- %s\n", name)
	}
	for _, name := range changes.Moved {
		fmt.Fprintf(w, "~ %s (domain changed)\n", name)
	}
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	return string(runes[:maxLen-3]) + "..."
}
