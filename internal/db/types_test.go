package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStringArray_ScanValue tests the JSONB round trip helpers
func TestStringArray_ScanValue(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan([]byte(`["go","sql"]`)))
	assert.Equal(t, StringArray{"go", "sql"}, a)

	v, err := a.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["go","sql"]`, string(v.([]byte)))
}

// TestStringArray_NilHandling tests NULL and nil defaults
func TestStringArray_NilHandling(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan(nil))
	assert.Equal(t, StringArray{}, a)

	var nilArr StringArray
	v, err := nilArr.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v.([]byte))
}

// TestGPAMap_ScanValue tests the semester GPA mapping round trip
func TestGPAMap_ScanValue(t *testing.T) {
	var m GPAMap
	require.NoError(t, m.Scan([]byte(`{"gpa_sem_1":"8.4","gpa_sem_2":"8.9"}`)))
	assert.Equal(t, "8.4", m["gpa_sem_1"])

	v, err := m.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"gpa_sem_1":"8.4","gpa_sem_2":"8.9"}`, string(v.([]byte)))
}

// TestGPAMap_NilValue tests the nil default
func TestGPAMap_NilValue(t *testing.T) {
	var m GPAMap
	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), v.([]byte))
}

// TestStudentJSON_HidesPasswordHash tests that credentials never serialize
func TestStudentJSON_HidesPasswordHash(t *testing.T) {
	s := Student{FullName: "Jane Doe", Email: "jane@example.com", PasswordHash: "secret"}
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.Contains(t, string(raw), "jane@example.com")
}
