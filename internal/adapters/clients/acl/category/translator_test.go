package category

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	categorydomain "github.com/jsamuelsen11/todosync/internal/domain/category"
)

func TestToDomainCategoryList(t *testing.T) {
	t.Parallel()

	body := `[{"id":1,"name":"work","color":"#ff0000"},{"id":"h","name":"home","color":"#00ff00"}]`

	var dtos []CategoryDTO
	require.NoError(t, json.Unmarshal([]byte(body), &dtos))

	want := []categorydomain.Category{
		{ID: "1", Name: "work", Color: "#ff0000"},
		{ID: "h", Name: "home", Color: "#00ff00"},
	}
	if diff := cmp.Diff(want, ToDomainCategoryList(dtos)); diff != "" {
		t.Errorf("ToDomainCategoryList() mismatch (-want +got):\n%s", diff)
	}
}
