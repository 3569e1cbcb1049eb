// Package mailer delivers registration confirmation emails through a pool of
// SMTP sending identities with daily usage caps.
package mailer

import (
	"errors"
	"regexp"
	"sync"

	"techfest-backend/internal/pkg/config"
)

var ErrNoAccountConfigured = errors.New("no email account configured")

type Account struct {
	Address     string
	Password    string
	DisplayName string
	DailyLimit  int
	usage       int
}

// Pool rotates over sending identities round-robin, skipping identities at
// their daily cap. Usage counters are reset by the scheduler once a day.
type Pool struct {
	mu       sync.Mutex
	accounts []*Account
	current  int
}

func NewPool(cfg config.EmailConfig) *Pool {
	p := &Pool{}
	for i, addr := range cfg.Addresses {
		if addr == "" {
			continue
		}
		password := ""
		if i < len(cfg.Passwords) {
			password = cfg.Passwords[i]
		}
		p.accounts = append(p.accounts, &Account{
			Address:     addr,
			Password:    password,
			DisplayName: cfg.SenderName,
			DailyLimit:  cfg.DailyLimit,
		})
	}
	return p
}

// Acquire returns the next identity with remaining quota. When every
// identity is at its cap the first configured one is returned anyway; the
// provider may throttle, which the send path tolerates.
func (p *Pool) Acquire() (*Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.accounts) == 0 {
		return nil, ErrNoAccountConfigured
	}

	for i := 0; i < len(p.accounts); i++ {
		idx := (p.current + i) % len(p.accounts)
		acct := p.accounts[idx]
		if acct.Password == "" {
			continue
		}
		if acct.usage < acct.DailyLimit {
			p.current = idx
			return acct, nil
		}
	}

	for _, acct := range p.accounts {
		if acct.Password != "" {
			return acct, nil
		}
	}
	return nil, ErrNoAccountConfigured
}

// MarkSent records a successful send and advances rotation so consecutive
// sends spread across the pool.
func (p *Pool) MarkSent(acct *Account) {
	p.mu.Lock()
	defer p.mu.Unlock()

	acct.usage++
	p.current = (p.current + 1) % len(p.accounts)
}

// Advance skips past the current identity after a provider-side auth or
// limit failure.
func (p *Pool) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.accounts) > 0 {
		p.current = (p.current + 1) % len(p.accounts)
	}
}

// ResetUsage zeroes every counter; invoked by the daily scheduler.
func (p *Pool) ResetUsage() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, acct := range p.accounts {
		acct.usage = 0
	}
}

type AccountStatus struct {
	Address    string `json:"address"`
	Usage      int    `json:"usage"`
	DailyLimit int    `json:"dailyLimit"`
	Active     bool   `json:"active"`
}

var maskRe = regexp.MustCompile(`(.{3}).*(@.*)`)

// Status reports per-account usage with masked addresses, for operational
// visibility.
func (p *Pool) Status() []AccountStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]AccountStatus, len(p.accounts))
	for i, acct := range p.accounts {
		out[i] = AccountStatus{
			Address:    maskRe.ReplaceAllString(acct.Address, "$1***$2"),
			Usage:      acct.usage,
			DailyLimit: acct.DailyLimit,
			Active:     i == p.current,
		}
	}
	return out
}
