package commands

import (
	"fmt"
	"sort"
	"time"
)

// DataInfoCommand prints the data files backing the store.
func DataInfoCommand(args []string) error {
	info := svc.Store.DataInfo()

	names := make([]string, 0, len(info))
	for name := range info {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := info[name]
		modified := "never written"
		if !entry.ModifiedAt.IsZero() {
			modified = entry.ModifiedAt.Format(time.RFC3339)
		}
		fmt.Printf("%-14s %5d records  %7d bytes  %s\n", name, entry.RecordCount, entry.SizeBytes, modified)
	}
	return nil
}
