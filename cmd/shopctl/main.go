// shopctl is a small command line client for the shop backend. It keeps the
// cart and the login credential in local state files, so the cart survives
// between invocations until checkout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adarshshan/stationaryPro/internal/client"
	"github.com/adarshshan/stationaryPro/internal/domain"
)

func main() {
	baseURL := getEnv("SHOP_API_URL", "http://localhost:3001")
	stateDir := getEnv("SHOPCTL_STATE_DIR", defaultStateDir())

	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	store, err := client.NewLocalStore(stateDir)
	if err != nil {
		log.Fatalf("shopctl: %v", err)
	}
	c, err := client.New(baseURL, store)
	if err != nil {
		log.Fatalf("shopctl: %v", err)
	}

	ctx := context.Background()
	if err := run(ctx, c, args); err != nil {
		log.Fatalf("shopctl: %v", err)
	}
}

func run(ctx context.Context, c *client.Client, args []string) error {
	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: shopctl login <mobile> <otp>")
		}
		user, err := c.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (user %s)\n", user.Mobile, user.ID)
		return nil

	case "logout":
		return c.Logout()

	case "products":
		products, err := c.Products(ctx)
		if err != nil {
			return err
		}
		for _, p := range products {
			fmt.Printf("%d\t%s\t%.2f\t%s\n", p.ID, p.Name, p.Price, p.Description)
		}
		return nil

	case "cart":
		return runCart(ctx, c, args[1:])

	case "checkout":
		if len(args) != 6 {
			return fmt.Errorf("usage: shopctl checkout <street> <city> <state> <zip> <country>")
		}
		order, err := c.Checkout(ctx, domain.Address{
			Street:  args[1],
			City:    args[2],
			State:   args[3],
			Zip:     args[4],
			Country: args[5],
		})
		if err != nil {
			return err
		}
		fmt.Printf("order %s created, total %.2f, status %s\n", order.ID, order.Total, order.Status)
		return nil

	case "orders":
		orders, err := c.Orders(ctx)
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Printf("%s\t%s\t%.2f\t%s\n", o.ID, o.UserID, o.Total, o.Status)
		}
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runCart(ctx context.Context, c *client.Client, args []string) error {
	if len(args) == 0 || args[0] == "show" {
		for _, it := range c.Cart() {
			fmt.Printf("%d\t%s\tx%d\t%.2f\n", it.ID, it.Name, it.Quantity, it.Price)
		}
		fmt.Printf("subtotal\t%.2f\n", c.Subtotal())
		return nil
	}

	switch args[0] {
	case "add":
		if len(args) != 2 {
			return fmt.Errorf("usage: shopctl cart add <product-id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[1])
		}
		products, err := c.Products(ctx)
		if err != nil {
			return err
		}
		for _, p := range products {
			if p.ID == id {
				return c.AddToCart(p)
			}
		}
		return fmt.Errorf("product %d not found", id)

	case "rm":
		if len(args) != 2 {
			return fmt.Errorf("usage: shopctl cart rm <product-id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[1])
		}
		return c.RemoveFromCart(id)

	case "set":
		if len(args) != 3 {
			return fmt.Errorf("usage: shopctl cart set <product-id> <quantity>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[1])
		}
		qty, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[2])
		}
		return c.UpdateQuantity(id, qty)

	case "clear":
		return c.ClearCart()

	default:
		return fmt.Errorf("unknown cart command %q", args[0])
	}
}

func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".shopctl"
	}
	return filepath.Join(dir, "shopctl")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: shopctl <command>

commands:
  login <mobile> <otp>
  logout
  products
  cart [show|add <id>|rm <id>|set <id> <qty>|clear]
  checkout <street> <city> <state> <zip> <country>
  orders

environment:
  SHOP_API_URL        backend base URL (default http://localhost:3001)
  SHOPCTL_STATE_DIR   state directory (default user config dir)`)
}
