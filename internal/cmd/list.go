package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/x7z/internal"
	"github.com/nguyengg/x7z/listing"
	"github.com/nguyengg/x7z/tree"
)

type List struct {
	Tree     bool `long:"tree" description:"show the content as a tree instead of a numbered list"`
	Depth    int  `long:"depth" description:"with --tree, how many levels to expand; negative expands everything" default:"-1"`
	JSON     bool `long:"json" description:"print the content as JSON"`
	Password bool `short:"p" long:"password" description:"ask for the password before listing instead of only when 7zz needs one"`
	Args     struct {
		Archives []flags.Filename `positional-arg-name:"archive" description:"the archives to list" required:"yes"`
	} `positional-args:"yes"`

	Env

	logger *log.Logger
}

func (c *List) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown positional arguments: %s", strings.Join(args, " "))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	success := 0
	n := len(c.Args.Archives)
	for i, archive := range c.Args.Archives {
		c.logger = internal.NewLogger(i, n, string(archive))

		records, _, err := c.listArchive(ctx, string(archive), c.Password, c.logger)
		if err == nil {
			header := string(archive)
			if format, err := listing.Identify(ctx, header); err == nil {
				header += " (" + format + ")"
			}

			c.render(os.Stdout, string(archive), header, records)
			success++
			continue
		}

		if errors.Is(err, context.Canceled) {
			break
		}

		c.logger.Print(internal.Fail("list error: %v", err))
	}

	if n > 1 {
		log.Printf("successfully listed %d/%d archives", success, n)
	}
	return nil
}

// render prints the records of one archive under header, except for JSON which uses the archive name as-is.
func (c *List) render(w io.Writer, archive, header string, records []listing.FileRecord) {
	switch {
	case c.JSON:
		if err := writeJSON(w, archive, records); err != nil {
			c.logger.Printf("write json error: %v", err)
		}
	case c.Tree:
		_, _ = fmt.Fprintln(w, header)
		writeTree(w, tree.Build(records), c.Depth)
	default:
		_, _ = fmt.Fprintln(w, header)
		writeFlat(w, records)
	}
}

// writeFlat prints one numbered line per record, then a summary line.
//
// The numbers are what extract --pick expects.
func writeFlat(w io.Writer, records []listing.FileRecord) {
	var (
		files, dirs int
		total       uint64
	)

	width := len(fmt.Sprint(len(records)))
	for i, r := range records {
		num := internal.Highlight(fmt.Sprintf("%*d", width, i+1))

		size := "<DIR>"
		if r.IsDir {
			dirs++
		} else {
			files++
			total += uint64(r.Size)
			size = humanize.IBytes(uint64(r.Size))
		}

		modified := "-"
		if r.Modified != nil {
			modified = r.Modified.Format("2006-01-02 15:04")
		}

		_, _ = fmt.Fprintf(w, "%s  %-16s  %10s  %s\n", num, modified, size, r.Path)
	}

	_, _ = fmt.Fprintf(w, "%d files, %d folders, %s\n", files, dirs, humanize.IBytes(total))
}

// writeTree prints the hierarchy expanded to the given depth.
func writeTree(w io.Writer, f *tree.Forest, depth int) {
	exp := tree.Expansion{}
	exp.ExpandToDepth(f, depth)

	exp.Visible(f, func(id tree.NodeID, d int) {
		n := f.Node(id)
		indent := strings.Repeat("  ", d)

		switch {
		case n.IsDir && len(n.Children) != 0 && exp.IsExpanded(n.FullPath):
			_, _ = fmt.Fprintf(w, "%s- %s/\n", indent, n.Name)
		case n.IsDir && len(n.Children) != 0:
			_, _ = fmt.Fprintf(w, "%s+ %s/ (%d)\n", indent, n.Name, len(f.Indices(id)))
		case n.IsDir:
			_, _ = fmt.Fprintf(w, "%s  %s/\n", indent, n.Name)
		default:
			_, _ = fmt.Fprintf(w, "%s  %s (%s)\n", indent, n.Name, humanize.IBytes(uint64(n.Size)))
		}
	})
}

type jsonListing struct {
	Archive string               `json:"archive"`
	Files   []listing.FileRecord `json:"files"`
}

// writeJSON writes one JSON object per archive.
func writeJSON(w io.Writer, archive string, records []listing.FileRecord) error {
	if records == nil {
		records = []listing.FileRecord{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonListing{Archive: archive, Files: records})
}
