package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emmaagwu/boundcache"
	"github.com/emmaagwu/boundcache/internal/logging"
)

// ErrBadCommand indicates a malformed replay script line.
var ErrBadCommand = errors.New("bad command")

func newReplayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay [file]",
		Short: "Run a put/get script against a cache",
		Long: `Run a script against a string cache, one command per line:

  put KEY VALUE   store VALUE under KEY
  get KEY         print the value of KEY, or None
  print           print the cache content

Blank lines and lines starting with # are ignored. Without a file the
script is read from standard input. Every eviction prints DISCARD: KEY.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			ctx := logging.WithComponent(cmd.Context(), "replay")
			opts := append(a.config.CacheOptions(), boundcache.WithLogger(*logging.FromContext(ctx)))

			return replay(in, cmd.OutOrStdout(), opts...)
		},
	}
}

func replay(in io.Reader, out io.Writer, opts ...boundcache.Option) error {
	opts = append(opts, boundcache.WithEvictionHandler(func(key, _ string) {
		fmt.Fprintf(out, "DISCARD: %s\n", key)
	}))
	c := boundcache.New[string, string](opts...)

	scanner := bufio.NewScanner(in)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch {
		case fields[0] == "put" && len(fields) >= 3:
			c.Put(fields[1], strings.Join(fields[2:], " "))

		case fields[0] == "get" && len(fields) == 2:
			if value, ok := c.Get(fields[1]); ok {
				fmt.Fprintln(out, value)
			} else {
				fmt.Fprintln(out, "None")
			}

		case fields[0] == "print" && len(fields) == 1:
			printCache(out, c)

		default:
			return fmt.Errorf("line %d: %w: %q", lineno, ErrBadCommand, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}

	return nil
}

// printCache writes the content of c sorted by key.
func printCache(out io.Writer, c *boundcache.Cache[string, string]) {
	type item struct{ key, value string }

	var items []item
	c.Range(func(key, value string) bool {
		items = append(items, item{key, value})
		return true
	})

	sort.Slice(items, func(i, j int) bool {
		return items[i].key < items[j].key
	})

	fmt.Fprintln(out, "Current cache:")
	for _, it := range items {
		fmt.Fprintf(out, "%s: %s\n", it.key, it.value)
	}
}
