package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidDateOrder = errors.New("check-out date must be after check-in date")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidCard      = errors.New("card number must have at least 13 digits")
)

// StayRange is a check-in/check-out pair of calendar dates. Time of day is
// irrelevant; both ends are normalized to UTC midnight.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := toDate(checkIn)
	out := toDate(checkOut)
	if !out.After(in) {
		return StayRange{}, ErrInvalidDateOrder
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

func (s StayRange) Nights() int {
	return Nights(s.checkIn, s.checkOut)
}

func (s StayRange) IsZero() bool {
	return s.checkIn.IsZero() && s.checkOut.IsZero()
}

// Nights returns the signed whole-day difference between two dates. It does
// not clamp: callers must validate ordering before treating the result as a
// stay length, and must not quote when the result is < 1.
func Nights(checkIn, checkOut time.Time) int {
	return int(toDate(checkOut).Sub(toDate(checkIn)) / (24 * time.Hour))
}

func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Money is an amount in integer cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Mul(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// ApplySurcharge scales the amount up by a percentage, rounding to the
// nearest cent.
func (m Money) ApplySurcharge(percent float64) Money {
	scaled := float64(m.cents) * (1 + percent/100.0)
	return Money{cents: int64(scaled + 0.5)}
}

// CardNumber holds a payment token as digits only. The constructor strips
// any non-digit characters; the internal value keeps every digit entered.
type CardNumber struct {
	digits string
}

const minCardDigits = 13

func NewCardNumber(raw string) (CardNumber, error) {
	digits := stripNonDigits(raw)
	if len(digits) < minCardDigits {
		return CardNumber{}, ErrInvalidCard
	}
	return CardNumber{digits: digits}, nil
}

func (c CardNumber) String() string {
	return c.digits
}

func (c CardNumber) Last4() string {
	if len(c.digits) < 4 {
		return c.digits
	}
	return c.digits[len(c.digits)-4:]
}

// Display groups the first 16 digits into blocks of 4 separated by single
// spaces. Digits past the 16th are dropped from the display only.
func (c CardNumber) Display() string {
	return FormatCardDigits(c.digits)
}

// FormatCardDigits is the display formatter used both by CardNumber and by
// the wizard while the token is still being typed (and may be shorter than
// a valid card).
func FormatCardDigits(raw string) string {
	digits := stripNonDigits(raw)
	var b strings.Builder
	for i := 0; i < len(digits) && i < 16; i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Basic local@domain.tld shape, mirroring the form-level check.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(value)
	if !emailPattern.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) String() string {
	return e.value
}
