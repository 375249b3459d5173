package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type entry struct {
	name string
	desc string
}

func (e entry) SearchName() string        { return e.name }
func (e entry) SearchDescription() string { return e.desc }

var corpus = []entry{
	{"Login Flow", "valid and invalid credentials"},
	{"Checkout", "cart to payment"},
	{"Password Reset", "email link expiry"},
}

func TestEmptyQueryReturnsInputUnchanged(t *testing.T) {
	got := Items(corpus, "")
	assert.Equal(t, corpus, got)

	got = Items(corpus, "   ")
	assert.Equal(t, corpus, got)
}

func TestMatchesNameOrDescription(t *testing.T) {
	got := Items(corpus, "login")
	assert.Len(t, got, 1)
	assert.Equal(t, "Login Flow", got[0].name)

	got = Items(corpus, "payment")
	assert.Len(t, got, 1)
	assert.Equal(t, "Checkout", got[0].name)
}

func TestCaseInsensitive(t *testing.T) {
	assert.Equal(t, Items(corpus, "LOGIN"), Items(corpus, "login"))
	assert.True(t, Match("Login Flow", "", "lOgIn"))
}

func TestIdempotent(t *testing.T) {
	once := Items(corpus, "e")
	twice := Items(once, "e")
	assert.Equal(t, once, twice)
}

func TestNoMatches(t *testing.T) {
	assert.Empty(t, Items(corpus, "zzz"))
}

func TestMatchTrimsQuery(t *testing.T) {
	assert.True(t, Match("Checkout", "", "  check  "))
	assert.True(t, Match("", "cart to payment", "cart"))
	assert.False(t, Match("Checkout", "cart", "payment"))
}
