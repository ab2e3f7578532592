package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs. The real App type
// satisfies this interface; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Menu(ctx context.Context) error
	ShowFood(ctx context.Context, args []string) error
	AddItem(ctx context.Context, args []string) error
	ShowCart(ctx context.Context) error
	UpdateItem(ctx context.Context, args []string) error
	RemoveItem(ctx context.Context, args []string) error
	ClearCart(ctx context.Context) error

	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	ShowOrder(ctx context.Context, args []string) error
	CancelOrder(ctx context.Context, args []string) error

	Like(ctx context.Context, args []string) error
	Favorites(ctx context.Context) error
	Rate(ctx context.Context, args []string) error
	Profile(ctx context.Context) error

	Users(ctx context.Context) error
	SetRole(ctx context.Context, args []string) error
	NewFood(ctx context.Context) error
	EditFood(ctx context.Context, args []string) error
	DeleteFood(ctx context.Context, args []string) error
	AllOrders(ctx context.Context) error
	SetOrderStatus(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: register, login, menu, show <id>, add <foodId> [qty], cart, update <foodId> <qty>, remove <foodId>, clear, exit"
	helpLoggedIn  = "Available commands: menu, show <id>, add <foodId> [qty], cart, update <foodId> <qty>, remove <foodId>, clear, checkout, orders, order <id>, cancel <id>, like <foodId>, favorites, rate <foodId>, profile, logout, exit"
	helpAdmin     = "Admin commands: users, setrole <userId> <role>, newfood, editfood <foodId>, delfood <foodId>, allorders, setstatus <orderId> <status>"
)

// runREPL starts the read-eval-print loop of the FoodCourt CLI.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Errors returned by handlers are printed
// to the user and never terminate the loop. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	report := func(err error) {
		if err != nil {
			printlnFn("Error:", err)
		}
	}

	for {
		printlnFn(fmt.Sprintf("fc %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}
			if a.isAdmin() {
				printlnFn(helpAdmin)
			}

		case "register":
			report(a.Register(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "m", "menu":
			report(a.Menu(ctx))

		case "show":
			report(a.ShowFood(ctx, args))

		case "add":
			report(a.AddItem(ctx, args))

		case "cart":
			report(a.ShowCart(ctx))

		case "update":
			report(a.UpdateItem(ctx, args))

		case "remove":
			report(a.RemoveItem(ctx, args))

		case "clear":
			report(a.ClearCart(ctx))

		case "checkout":
			report(a.Checkout(ctx))

		case "orders":
			report(a.Orders(ctx))

		case "order":
			report(a.ShowOrder(ctx, args))

		case "cancel":
			report(a.CancelOrder(ctx, args))

		case "like":
			report(a.Like(ctx, args))

		case "favorites":
			report(a.Favorites(ctx))

		case "rate":
			report(a.Rate(ctx, args))

		case "profile":
			report(a.Profile(ctx))

		case "users":
			report(a.Users(ctx))

		case "setrole":
			report(a.SetRole(ctx, args))

		case "newfood":
			report(a.NewFood(ctx))

		case "editfood":
			report(a.EditFood(ctx, args))

		case "delfood":
			report(a.DeleteFood(ctx, args))

		case "allorders":
			report(a.AllOrders(ctx))

		case "setstatus":
			report(a.SetOrderStatus(ctx, args))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
