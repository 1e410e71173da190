package storage

import "github.com/neexbeast/voyage-api/internal/catalog"

// Column lists shared by the Postgres and SQLite queries.
const (
	categoryColumns    = `id, name, slug, description`
	destinationColumns = `id, name, slug, type, country, continent, description, hero_image, rating, review_count`
)

const (
	selectCategories   = `SELECT ` + categoryColumns + ` FROM categories ORDER BY position, id`
	selectDestinations = `SELECT ` + destinationColumns + ` FROM destinations ORDER BY position, id`
)

// rowScanner is satisfied by pgx.Rows and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (catalog.Category, error) {
	var c catalog.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description)
	return c, err
}

func scanDestination(row rowScanner) (catalog.Destination, error) {
	var d catalog.Destination
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Slug,
		&d.Type,
		&d.Country,
		&d.Continent,
		&d.Description,
		&d.HeroImage,
		&d.Rating,
		&d.ReviewCount,
	)
	return d, err
}
