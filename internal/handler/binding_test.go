package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/clinicware/dental-admin/pkg/apperror"
)

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"FullName":  "full_name",
		"Specialty": "specialty",
		"PatientID": "patient_id",
		"TimeOfDay": "time_of_day",
		"BirthDate": "birth_date",
		"ID":        "id",
	}
	for in, want := range cases {
		assert.Equal(t, want, snakeCase(in), in)
	}
}

func testContext(id string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: id}}
	return c
}

func TestParseID(t *testing.T) {
	id, err := ParseID(testContext("42"), "doctor")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseIDGarbageIsNotFound(t *testing.T) {
	for _, raw := range []string{"abc", "", "-1", "0", "1.5"} {
		_, err := ParseID(testContext(raw), "doctor")
		assert.True(t, apperror.IsNotFound(err), raw)
	}
}
