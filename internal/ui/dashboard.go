package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/valencire/account/internal/account"
	"github.com/valencire/account/internal/common"
)

// recentActivityLimit caps how many activity events the dashboard shows.
// The log itself is unbounded; truncation is display-only.
const recentActivityLimit = 20

// ShowDashboard re-reads the current user projection and renders it:
// profile header, counts, order history and recent activity.
func (a *App) ShowDashboard(ctx context.Context) error {
	current := a.sessions.Current()
	if current == nil {
		a.view = ViewLanding
		printlnFn("Sign in first.")
		return common.ErrorNotFound
	}

	user, err := a.accounts.Get(current.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// account vanished under the session
			_ = a.sessions.End(ctx)
			a.view = ViewLanding
			printlnFn("Account not found. Please create an account.")
			return err
		}
		a.logger.Error(ctx, "dashboard read failed", "error", err)
		return err
	}

	printlnFn("")
	printlnFn("VALENCIRÈ®")
	printlnFn(fmt.Sprintf("%s %s  <%s>", user.FirstName, user.LastName, user.Email))
	printlnFn(fmt.Sprintf("Member since %s", formatDate(user.CreatedAt)))
	printlnFn("")
	printlnFn(fmt.Sprintf("Total Orders: %d    Activities: %d    Addresses: %d",
		len(user.Orders), len(user.Activities), len(user.Addresses)))

	printlnFn("")
	printlnFn("ORDER HISTORY")
	if len(user.Orders) == 0 {
		printlnFn("  No orders yet. Your order history will appear here.")
	} else {
		for _, order := range user.Orders {
			printlnFn(fmt.Sprintf("  %s  %s  [%s]", order.ID, formatDate(order.Date), order.Status))
			for _, item := range order.Items {
				printlnFn(fmt.Sprintf("    %s × %d  ₹%s", item.Name, item.Quantity, formatAmount(item.Price)))
			}
			printlnFn(fmt.Sprintf("    Total ₹%s", formatAmount(order.Total)))
		}
	}

	printlnFn("")
	printlnFn("RECENT ACTIVITY")
	activities := user.Activities
	if len(activities) > recentActivityLimit {
		activities = activities[:recentActivityLimit]
	}
	for _, activity := range activities {
		printlnFn(fmt.Sprintf("  %s  %s", formatDate(activity.Timestamp), activity.Description))
	}
	printlnFn("")

	return nil
}

// AddSampleOrder places the demo order and re-renders.
func (a *App) AddSampleOrder(ctx context.Context) error {
	current := a.sessions.Current()
	if current == nil {
		printlnFn("Sign in first.")
		return common.ErrorNotFound
	}

	if _, err := a.accounts.AppendOrder(ctx, current.Email, account.SampleOrder()); err != nil {
		a.logger.Error(ctx, "order not placed", "error", err)
		printlnFn("Something went wrong. Please try again.")
		return err
	}

	return a.ShowDashboard(ctx)
}

// AddAddress collects a shipping address and saves it to the address book.
func (a *App) AddAddress(ctx context.Context) error {
	current := a.sessions.Current()
	if current == nil {
		printlnFn("Sign in first.")
		return common.ErrorNotFound
	}

	label, err := GetSimpleText(a.reader, "Label (Home, Office, ...)", a.out)
	if err != nil {
		return err
	}
	street, err := GetSimpleText(a.reader, "Street address", a.out)
	if err != nil {
		return err
	}
	city, err := GetSimpleText(a.reader, "City", a.out)
	if err != nil {
		return err
	}
	state, err := GetSimpleText(a.reader, "State", a.out)
	if err != nil {
		return err
	}
	pincode, err := GetSimpleText(a.reader, "Pincode", a.out)
	if err != nil {
		return err
	}

	address := account.Address{Label: label, Address: street, City: city, State: state, Pincode: pincode}
	if _, err := a.accounts.AddAddress(ctx, current.Email, address); err != nil {
		a.logger.Error(ctx, "address not saved", "error", err)
		printlnFn("Something went wrong. Please try again.")
		return err
	}

	return a.ShowDashboard(ctx)
}

// formatDate renders timestamps the way the storefront did:
// "Aug 30, 2026, 12:05 PM".
func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006, 03:04 PM")
}

// formatAmount renders a rupee amount with thousands separators, e.g.
// 1800 -> "1,800". Demo amounts are whole rupees.
func formatAmount(amount float64) string {
	s := strconv.FormatInt(int64(amount), 10)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
