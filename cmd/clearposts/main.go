// clearposts is an operator tool that deletes every row from the posts
// table of a named database. It never touches blob storage; orphaned image
// objects are accepted. Destructive runs require --confirm; --dry-run
// previews what would go.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jeremyjsx/journal/internal/backend"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const previewLimit = 10

func main() {
	var (
		dsn     = flag.String("dsn", "", "database connection string (required)")
		driver  = flag.String("driver", "", "sql driver: postgres or sqlite (default: inferred from dsn)")
		dryRun  = flag.Bool("dry-run", false, "preview what would be deleted without changing anything")
		confirm = flag.Bool("confirm", false, "actually delete all posts")
	)
	flag.Parse()

	if *dsn == "" {
		fmt.Fprintln(os.Stderr, "error: -dsn is required")
		usage()
		os.Exit(1)
	}
	if !*dryRun && !*confirm {
		fmt.Fprintln(os.Stderr, "error: pass -confirm to proceed or -dry-run to preview")
		usage()
		os.Exit(1)
	}

	if *driver == "" {
		*driver = backend.DriverFor(*dsn)
	}

	db, err := sql.Open(*driver, *dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var count int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		fmt.Fprintf(os.Stderr, "error: count posts: %v\n", err)
		os.Exit(1)
	}

	if count == 0 {
		fmt.Println("no posts found, nothing to delete")
		return
	}

	fmt.Printf("found %d post(s) in %s database\n", count, *driver)

	if *dryRun {
		fmt.Printf("dry run: would delete the following (newest %d shown):\n", previewLimit)
		placeholder := "?"
		if *driver == backend.DriverPostgres {
			placeholder = "$1"
		}
		rows, err := db.QueryContext(ctx,
			"SELECT id, title, created_at FROM posts ORDER BY created_at DESC, id ASC LIMIT "+placeholder,
			previewLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: list posts: %v\n", err)
			os.Exit(1)
		}
		defer rows.Close()
		for rows.Next() {
			var id int64
			var title, createdAt string
			if err := rows.Scan(&id, &title, &createdAt); err != nil {
				fmt.Fprintf(os.Stderr, "error: scan post: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("  #%d  %s  (%s)\n", id, title, createdAt)
		}
		if err := rows.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "error: list posts: %v\n", err)
			os.Exit(1)
		}
		if count > previewLimit {
			fmt.Printf("  ... and %d more post(s)\n", count-previewLimit)
		}
		fmt.Println("to actually delete, re-run with -confirm")
		return
	}

	res, err := db.ExecContext(ctx, "DELETE FROM posts")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: delete posts: %v\n", err)
		os.Exit(1)
	}
	deleted, _ := res.RowsAffected()
	fmt.Printf("deleted %d post(s)\n", deleted)
}

func usage() {
	fmt.Fprintln(os.Stderr, "\nusage:")
	fmt.Fprintln(os.Stderr, "  clearposts -dsn <dsn> -dry-run")
	fmt.Fprintln(os.Stderr, "  clearposts -dsn <dsn> -confirm")
}
