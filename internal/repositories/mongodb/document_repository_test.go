package mongodb

import (
	"testing"

	"github.com/oportunidadeshoy/migration-tools/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestWriteModels(t *testing.T) {
	t.Run("keyed writes become upserting replacements", func(t *testing.T) {
		doc := map[string]interface{}{"numero": "042", "estado": "disponible"}
		models := writeModels([]repositories.Write{{ID: "042", Doc: doc}})
		require.Len(t, models, 1)

		replace, ok := models[0].(*mongo.ReplaceOneModel)
		require.True(t, ok)
		assert.Equal(t, bson.M{"_id": "042"}, replace.Filter)
		assert.Equal(t, doc, replace.Replacement)
		require.NotNil(t, replace.Upsert)
		assert.True(t, *replace.Upsert)
	})

	t.Run("unkeyed writes become inserts", func(t *testing.T) {
		doc := map[string]interface{}{"monto": 150.0}
		models := writeModels([]repositories.Write{{Doc: doc}})
		require.Len(t, models, 1)

		insert, ok := models[0].(*mongo.InsertOneModel)
		require.True(t, ok)
		assert.Equal(t, doc, insert.Document)
	})

	t.Run("order is preserved across mixed writes", func(t *testing.T) {
		writes := []repositories.Write{
			{ID: "001", Doc: map[string]interface{}{"numero": "001"}},
			{Doc: map[string]interface{}{"monto": 1.0}},
			{ID: "002", Doc: map[string]interface{}{"numero": "002"}},
		}
		models := writeModels(writes)
		require.Len(t, models, 3)

		_, first := models[0].(*mongo.ReplaceOneModel)
		_, second := models[1].(*mongo.InsertOneModel)
		_, third := models[2].(*mongo.ReplaceOneModel)
		assert.True(t, first)
		assert.True(t, second)
		assert.True(t, third)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, writeModels(nil))
	})
}
