package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/readmode-server/internal/config"
)

func TestSourceHandlerFactory_CreateHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sourceType string
		wantType   any
		wantErr    bool
	}{
		{sourceType: config.SourceTypeFile, wantType: &fileSourceHandler{}},
		{sourceType: config.SourceTypeAPI, wantType: &apiSourceHandler{}},
		{sourceType: config.SourceTypeDatabase, wantType: &databaseSourceHandler{}},
		{sourceType: "git", wantErr: true},
		{sourceType: "", wantErr: true},
	}

	factory := NewSourceHandlerFactory()
	for _, tt := range tests {
		t.Run(tt.sourceType, func(t *testing.T) {
			t.Parallel()

			handler, err := factory.CreateHandler(tt.sourceType)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported source type")
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, handler)
		})
	}
}
