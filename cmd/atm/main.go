// Command atm runs the interactive ATM simulator: create an account, log in
// with an account number and PIN, then check balance, deposit, withdraw,
// transfer or view history. State is kept in a local JSON file between runs.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/sheikh-saqib/atm-ledger-system/internal/atm"
	"github.com/sheikh-saqib/atm-ledger-system/internal/config"
	"github.com/sheikh-saqib/atm-ledger-system/internal/events/audit"
	"github.com/sheikh-saqib/atm-ledger-system/internal/storage/jsonfile"
	"github.com/sheikh-saqib/atm-ledger-system/internal/store"
)

type cli struct {
	svc      *atm.Service
	in       *bufio.Reader
	currency string
}

func main() {
	cfg := config.Load()

	st := store.New(jsonfile.New(cfg.DataFile))
	if err := st.Load(); err != nil {
		log.Fatalf("loading ledger state: %v", err)
	}

	publisher, err := audit.NewPublisher(cfg.AuditFile)
	if err != nil {
		log.Fatalf("opening audit trail: %v", err)
	}
	defer publisher.Close()

	c := &cli{
		svc:      atm.NewService(st, publisher),
		in:       bufio.NewReader(os.Stdin),
		currency: cfg.CurrencySymbol,
	}

	fmt.Println("Welcome to Simple ATM Simulator")
	for {
		fmt.Println("\n1) Create account")
		fmt.Println("2) Login")
		fmt.Println("3) Exit")
		switch c.prompt("Choose: ") {
		case "1":
			c.createAccount()
		case "2":
			if number, ok := c.login(); ok {
				c.accountMenu(number)
			}
		case "3":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func (c *cli) createAccount() {
	for {
		pin := c.promptPIN("Choose a 4-digit PIN: ")
		confirm := c.promptPIN("Confirm PIN: ")
		if pin != confirm {
			fmt.Println("PINs do not match. Try again.")
			continue
		}

		number, err := c.svc.Create(pin)
		if err != nil {
			fmt.Println(message(err))
			continue
		}
		fmt.Printf("Account created. Your account number is: %s\n", number)
		fmt.Println("Please remember your account number and PIN.")
		return
	}
}

func (c *cli) login() (string, bool) {
	number := c.prompt("Account number: ")
	pin := c.promptPIN("PIN: ")
	if err := c.svc.Authenticate(number, pin); err != nil {
		fmt.Println(message(err))
		return "", false
	}
	return number, true
}

func (c *cli) accountMenu(number string) {
	for {
		fmt.Println("\n--- Account Menu ---")
		fmt.Println("1) Check balance")
		fmt.Println("2) Deposit")
		fmt.Println("3) Withdraw")
		fmt.Println("4) Transfer")
		fmt.Println("5) Transaction history")
		fmt.Println("6) Logout")
		switch c.prompt("Choose: ") {
		case "1":
			c.showBalance(number)
		case "2":
			c.deposit(number)
		case "3":
			c.withdraw(number)
		case "4":
			c.transfer(number)
		case "5":
			c.showHistory(number)
		case "6":
			fmt.Println("Logging out.")
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func (c *cli) showBalance(number string) {
	balance, err := c.svc.BalanceOf(number)
	if err != nil {
		fmt.Println(message(err))
		return
	}
	fmt.Printf("Current balance: %s\n", c.money(balance))
}

func (c *cli) deposit(number string) {
	amount, ok := c.promptAmount("Amount to deposit: ")
	if !ok {
		return
	}
	if _, err := c.svc.Deposit(number, amount); err != nil {
		fmt.Println(message(err))
		return
	}
	fmt.Printf("Deposited %s.\n", c.money(amount))
}

func (c *cli) withdraw(number string) {
	amount, ok := c.promptAmount("Amount to withdraw: ")
	if !ok {
		return
	}
	if _, err := c.svc.Withdraw(number, amount); err != nil {
		fmt.Println(message(err))
		return
	}
	fmt.Printf("Withdrew %s.\n", c.money(amount))
}

func (c *cli) transfer(number string) {
	to := c.prompt("Recipient account number: ")
	amount, ok := c.promptAmount("Amount to transfer: ")
	if !ok {
		return
	}
	if err := c.svc.Transfer(number, to, amount); err != nil {
		fmt.Println(message(err))
		return
	}
	fmt.Printf("Transferred %s to account %s.\n", c.money(amount), to)
}

func (c *cli) showHistory(number string) {
	history, err := c.svc.History(number)
	if err != nil {
		fmt.Println(message(err))
		return
	}
	fmt.Println("--- Transaction history (most recent first) ---")
	for i := len(history) - 1; i >= 0; i-- {
		tx := history[i]
		line := fmt.Sprintf("%s | %-12s | %s",
			tx.Timestamp.Format("2006-01-02 15:04:05"), tx.Kind, c.money(tx.Amount))
		if tx.Counterparty != "" {
			line += " | account " + tx.Counterparty
		}
		fmt.Println(line)
	}
}

func (c *cli) prompt(label string) string {
	fmt.Print(label)
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptPIN reads a PIN without echoing it when stdin is a terminal. When
// input is piped (tests, scripts) it falls back to a plain line read.
func (c *cli) promptPIN(label string) string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return c.prompt(label)
	}
	fmt.Print(label)
	pin, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(pin))
}

func (c *cli) promptAmount(label string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(c.prompt(label))
	if err != nil {
		fmt.Println("Invalid amount.")
		return decimal.Zero, false
	}
	return amount, true
}

// money formats an amount for display. The currency symbol exists only in
// this layer; the core works with plain numeric values.
func (c *cli) money(amount decimal.Decimal) string {
	return c.currency + amount.StringFixed(2)
}

// message turns a domain error into the line the menu prints. All errors
// surface unrecovered; the session stays at the current menu.
func message(err error) string {
	return capitalize(err.Error()) + "."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
