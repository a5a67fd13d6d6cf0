package probe

import (
	"context"
	"fmt"

	"github.com/iliyamo/hello-probe/internal/database"
)

// DatabaseLabel names the relational database in /database responses,
// whatever driver the URI selects.
const DatabaseLabel = "Postgres"

// SQL probes a relational database reachable at URI.
type SQL struct {
	URI string
}

// NewSQL returns a probe for the database at uri.
func NewSQL(uri string) *SQL { return &SQL{URI: uri} }

func (p *SQL) Name() string { return DatabaseLabel }

// Check opens a connection and closes it again.
func (p *SQL) Check(ctx context.Context) error {
	db, err := database.Open(ctx, p.URI)
	if err != nil {
		return fmt.Errorf("sql probe: %w", err)
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("sql probe: close: %w", err)
	}
	return nil
}
