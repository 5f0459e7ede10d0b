package terminal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/playbill/pkg/models/domain"
	"github.com/de-tools/playbill/pkg/services/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invoicesJSON = `[
  {
    "customer": "BigCo",
    "performances": [
      {"playID": "hamlet", "audience": 55},
      {"playID": "as-like", "audience": 35},
      {"playID": "othello", "audience": 40}
    ]
  },
  {
    "customer": "Ghost Ltd",
    "performances": [
      {"playID": "macbeth", "audience": 10}
    ]
  },
  {
    "customer": "SmallCo",
    "performances": [
      {"playID": "hamlet", "audience": 30},
      {"playID": "as-like", "audience": 20}
    ]
  }
]`

const playsINI = `[hamlet]
name = Hamlet
type = tragedy

[as-like]
name = As You Like It
type = comedy

[othello]
name = Othello
type = tragedy
`

// memCatalog is an in-memory catalog.Service.
type memCatalog struct {
	plays []domain.Play
}

func (m *memCatalog) ListPlays(context.Context) ([]domain.Play, error) { return m.plays, nil }

func (m *memCatalog) GetPlay(ctx context.Context, id string) (domain.Play, error) {
	c, _ := m.Catalog(ctx)
	return c.Lookup(id)
}

func (m *memCatalog) Catalog(context.Context) (domain.Catalog, error) {
	c := domain.Catalog{}
	for _, p := range m.plays {
		c[p.ID] = p
	}
	return c, nil
}

func (m *memCatalog) SavePlays(_ context.Context, plays []domain.Play) error {
	m.plays = append(m.plays, plays...)
	return nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCLI_Statement(t *testing.T) {
	// Given
	dir := t.TempDir()
	invoices := writeFile(t, dir, "invoices.json", invoicesJSON)
	plays := writeFile(t, dir, "plays.ini", playsINI)

	var out bytes.Buffer
	cli := NewCLI(Options{Output: &out})
	cli.SetArgs([]string{"statement", "--invoices", invoices, "--plays", plays})

	// When
	err := cli.Execute()

	// Then
	require.ErrorIs(t, err, domain.ErrUnknownPlay)
	assert.Contains(t, err.Error(), "Ghost Ltd")
	assert.Equal(t, "Statement for BigCo\n"+
		"  Hamlet: $650.00 (55 seats)\n"+
		"  As You Like It: $580.00 (35 seats)\n"+
		"  Othello: $500.00 (40 seats)\n"+
		"Amount owed is $1,730.00\n"+
		"You earned 47 credits\n"+
		"\n"+
		"Statement for SmallCo\n"+
		"  Hamlet: $400.00 (30 seats)\n"+
		"  As You Like It: $360.00 (20 seats)\n"+
		"Amount owed is $760.00\n"+
		"You earned 4 credits\n", out.String())
}

func TestCLI_StatementWithTariff(t *testing.T) {
	dir := t.TempDir()
	invoices := writeFile(t, dir, "invoices.yaml", `- customer: SmallCo
  performances:
    - playID: hamlet
      audience: 30
`)
	plays := writeFile(t, dir, "plays.ini", playsINI)
	tariff := writeFile(t, dir, "tariff.yaml", "tariff:\n  tragedy:\n    base: 50000\n")

	var out bytes.Buffer
	cli := NewCLI(Options{Output: &out})
	cli.SetArgs([]string{"statement", "--invoices", invoices, "--plays", plays, "--config", tariff})

	require.NoError(t, cli.Execute())
	assert.Contains(t, out.String(), "Amount owed is $500.00\n")
}

func TestCLI_StatementUnknownGenreInCatalog(t *testing.T) {
	dir := t.TempDir()
	invoices := writeFile(t, dir, "invoices.json", `[]`)
	plays := writeFile(t, dir, "plays.json", `{"henry-v": {"name": "Henry V", "type": "history"}}`)

	cli := NewCLI(Options{Output: &bytes.Buffer{}})
	cli.SetArgs([]string{"statement", "--invoices", invoices, "--plays", plays})

	err := cli.Execute()
	assert.ErrorIs(t, err, domain.ErrUnknownGenre)
}

func TestCLI_PlaysImportAndList(t *testing.T) {
	dir := t.TempDir()
	plays := writeFile(t, dir, "plays.ini", playsINI)

	store := &memCatalog{}
	opener := func(context.Context, string) (catalog.Service, func() error, error) {
		return store, func() error { return nil }, nil
	}

	var out bytes.Buffer
	cli := NewCLI(Options{Output: &out, OpenCatalog: opener})
	cli.SetArgs([]string{"plays", "import", "--plays", plays, "--db", "test.db"})
	require.NoError(t, cli.Execute())
	assert.Equal(t, "Imported 3 plays into test.db\n", out.String())
	require.Len(t, store.plays, 3)
	assert.Equal(t, "as-like", store.plays[0].ID)

	out.Reset()
	cli = NewCLI(Options{Output: &out, OpenCatalog: opener})
	cli.SetArgs([]string{"plays", "list", "--db", "test.db"})
	require.NoError(t, cli.Execute())
	assert.Equal(t, "ID       NAME            TYPE\n"+
		"as-like  As You Like It  comedy\n"+
		"hamlet   Hamlet          tragedy\n"+
		"othello  Othello         tragedy\n", out.String())
}
