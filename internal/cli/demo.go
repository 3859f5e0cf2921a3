package cli

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/library"
)

// DemoCommand runs the fixed library walkthrough on the console.
type DemoCommand struct {
	Verbose bool

	out io.Writer
}

func NewDemoCommand() *DemoCommand {
	return &DemoCommand{out: os.Stdout}
}

func (cmd *DemoCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)

	fs.BoolVar(&cmd.Verbose, "verbose", false, "Log the outcome of every borrow and return to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s demo [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add three books and two users, then borrow, return and queue requests.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *DemoCommand) Run() error {
	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	lib := library.NewSystem(out)

	library.Seed(lib)

	fmt.Fprintln(out, "Displaying all books:")
	lib.DisplayBooks()

	fmt.Fprintln(out, "Displaying user Alice:")
	lib.DisplayUser(1)

	fmt.Fprintln(out, "Alice borrows '1984':")
	cmd.logOutcome("borrow", 1, 2, lib.BorrowBook(1, 2))

	fmt.Fprintln(out, "Displaying user Alice after borrowing a book:")
	lib.DisplayUser(1)

	fmt.Fprintln(out, "Alice returns '1984':")
	cmd.logOutcome("return", 1, 2, lib.ReturnBook(1, 2))

	fmt.Fprintln(out, "Displaying user Alice after returning the book:")
	lib.DisplayUser(1)

	fmt.Fprintln(out, "Requesting books:")
	lib.RequestBook(1, 2)
	lib.RequestBook(2, 3)

	fmt.Fprintln(out, "Processing requests:")
	for _, p := range lib.ProcessRequests() {
		cmd.logOutcome("request", p.Request.UserID, p.Request.BookID, p.Outcome)
	}

	fmt.Fprintln(out, "Displaying all books after processing requests:")
	lib.DisplayBooks()

	return nil
}

func (cmd *DemoCommand) logOutcome(action string, userID, bookID int, outcome entities.Outcome) {
	if !cmd.Verbose {
		return
	}
	log.Printf("Demo: %s user=%d book=%d outcome=%s", action, userID, bookID, outcome)
}
