// internal/adapters/out/db/scan.go
package db

// rowScanner abstracts over *sql.Row and *sql.Rows so scanCart and
// scanCartItem serve both the point reads and the full scans.
type rowScanner interface {
	Scan(dest ...any) error
}
