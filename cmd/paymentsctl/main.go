// paymentsctl is a small terminal front end for the payments admin API. It
// drives every mutation through the session store, the same way the web UI
// would.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/aibek/payments-admin/internal/models"
	"github.com/aibek/payments-admin/internal/session"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "payments admin API address")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	store := session.Open(ctx, session.NewClient(*addr))
	if msg := store.LastError(); msg != "" {
		fmt.Fprintf(os.Stderr, "warning: initial load failed: %s\n", msg)
	}

	var err error
	switch args[0] {
	case "list":
		err = list(store)
	case "add":
		err = add(ctx, store, args[1:])
	case "set":
		err = set(ctx, store, args[1:])
	case "rm":
		err = remove(ctx, store, args[1:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: paymentsctl [-addr URL] <command>

commands:
  list                                 print all payments
  add <name> <email> <amount> <status> create a payment
  set <id> <field>=<value> ...         update fields (name, email, amount, status)
  rm <id> [<id> ...]                   delete payments`)
}

func list(store *session.Store) error {
	if msg := store.LastError(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tAMOUNT\tSTATUS")
	for _, p := range store.Records() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n", p.ID, p.Name, p.Email, p.Amount, p.Status)
	}
	return w.Flush()
}

func add(ctx context.Context, store *session.Store, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("add wants: name email amount status")
	}
	payment, err := store.Add(ctx, models.CreatePaymentRequest{
		Name:   args[0],
		Email:  args[1],
		Amount: args[2],
		Status: args[3],
	})
	if err != nil {
		return err
	}
	fmt.Printf("created %s\n", payment.ID)
	return nil
}

func set(ctx context.Context, store *session.Store, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("set wants: id field=value ...")
	}
	id := args[0]

	var req models.UpdatePaymentRequest
	for _, pair := range args[1:] {
		field, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("bad assignment %q", pair)
		}
		switch field {
		case "name":
			req.Name = &value
		case "email":
			req.Email = &value
		case "amount":
			req.Amount = value
		case "status":
			req.Status = &value
		default:
			return fmt.Errorf("unknown field %q", field)
		}
	}

	payment, err := store.Update(ctx, id, req)
	if err != nil {
		return err
	}
	fmt.Printf("updated %s (status %s)\n", payment.ID, payment.Status)
	return nil
}

func remove(ctx context.Context, store *session.Store, ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("rm wants at least one id")
	}
	deleted, err := store.RemoveMany(ctx, ids)
	if err != nil {
		return err
	}
	if deleted < len(ids) {
		fmt.Printf("deleted %d of %d (some ids were unknown)\n", deleted, len(ids))
		return nil
	}
	fmt.Printf("deleted %d\n", deleted)
	return nil
}
