package ui

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

type formField struct {
	label string
	value string
}

func statusIndex(options []string, value string) int {
	for i, opt := range options {
		if opt == value {
			return i
		}
	}
	return 0
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func relativeAge(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func appendRune(buf string, msg string) string {
	if len(msg) == 1 || msg == " " {
		return buf + msg
	}
	return buf
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
