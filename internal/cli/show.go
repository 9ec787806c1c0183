package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a stored document",
	Long: `Print the stored content of a document to standard output.
The configured suffix is tried when the bare name is not stored.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	sess := newSession(nil)
	if err := openArg(ctx, sess, args[0]); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), sess.CurrentContent())
	return nil
}

// maxSuggestDistance bounds how far a stored name may be from the request.
const maxSuggestDistance = 3

// suggest returns a "did you mean" hint for a missing name, or "".
func suggest(ctx context.Context, name string) string {
	names, err := store.List(ctx)
	if err != nil {
		return ""
	}
	near := closest(name, names, cfg.Suffix, 3)
	if len(near) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %s?)", strings.Join(near, ", "))
}

// closest returns up to limit names within maxSuggestDistance of name,
// nearest first. Names are also compared without suffix.
func closest(name string, names []string, suffix string, limit int) []string {
	type candidate struct {
		name string
		dist int
	}
	var cands []candidate
	for _, n := range names {
		d := levenshtein.ComputeDistance(name, n)
		if trimmed := strings.TrimSuffix(n, suffix); suffix != "" && trimmed != n {
			d = min(d, levenshtein.ComputeDistance(name, trimmed))
		}
		if d <= maxSuggestDistance {
			cands = append(cands, candidate{name: n, dist: d})
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].name < cands[j].name
		}
		return cands[i].dist < cands[j].dist
	})
	if len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.name
	}
	return out
}
