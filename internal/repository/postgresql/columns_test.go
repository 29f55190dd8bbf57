package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixColumns(t *testing.T) {
	assert.Equal(t, "ss.id, ss.employee_id, ss.created_at", prefixColumns("ss", "\n\tid, employee_id,\n\tcreated_at"))
}
