package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/eonics-site/internal/app/models"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *models.Catalog)
	}{
		{"duplicate ring id", func(c *models.Catalog) { c.Ring[1].ID = c.Ring[0].ID }},
		{"empty project id", func(c *models.Catalog) { c.Projects[0].ID = "" }},
		{"empty gallery", func(c *models.Catalog) { c.Projects[2].Gallery = nil }},
		{"competition without link", func(c *models.Catalog) { c.Competitions[0].LinkURL = "" }},
		{"unknown training category", func(c *models.Catalog) { c.Training[0].Category = "Robotics" }},
		{"ring item without link", func(c *models.Catalog) { c.Ring[3].Href = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorIs(t, Validate(c), models.ErrInvalidCatalog)
		})
	}
}
