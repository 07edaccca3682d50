package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	userID := uuid.New()

	addr, err := NewAddress(userID, "Asha K", "12 Craft Lane", "", "Jaipur", "Rajasthan", "302001", "9876543210")
	require.NoError(t, err)

	assert.Equal(t, userID, addr.UserID)
	assert.Equal(t, "302001", addr.Pincode)
	assert.False(t, addr.IsDefault)
}

func TestNewAddress_Validation(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		mutate  func() (*Address, error)
	}{
		{"nil user", func() (*Address, error) {
			return NewAddress(uuid.Nil, "A", "L1", "", "City", "State", "302001", "987")
		}},
		{"empty name", func() (*Address, error) {
			return NewAddress(userID, "", "L1", "", "City", "State", "302001", "987")
		}},
		{"bad pincode short", func() (*Address, error) {
			return NewAddress(userID, "A", "L1", "", "City", "State", "3020", "987")
		}},
		{"bad pincode leading zero", func() (*Address, error) {
			return NewAddress(userID, "A", "L1", "", "City", "State", "030200", "987")
		}},
		{"bad pincode letters", func() (*Address, error) {
			return NewAddress(userID, "A", "L1", "", "City", "State", "30200a", "987")
		}},
		{"missing phone", func() (*Address, error) {
			return NewAddress(userID, "A", "L1", "", "City", "State", "302001", "")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.mutate()
			assert.Error(t, err)
		})
	}
}

func TestValidPincode(t *testing.T) {
	assert.True(t, ValidPincode("302001"))
	assert.False(t, ValidPincode("030200"))
	assert.False(t, ValidPincode("30200"))
	assert.False(t, ValidPincode("abcdef"))
}

func TestAddress_Update(t *testing.T) {
	addr, err := NewAddress(uuid.New(), "Asha K", "12 Craft Lane", "", "Jaipur", "Rajasthan", "302001", "9876543210")
	require.NoError(t, err)

	require.NoError(t, addr.Update("Asha K", "44 Weaver Street", "Near market", "Jodhpur", "Rajasthan", "342001", "9876543210"))
	assert.Equal(t, "44 Weaver Street", addr.Line1)
	assert.Equal(t, "342001", addr.Pincode)

	assert.Error(t, addr.Update("Asha K", "44 Weaver Street", "", "Jodhpur", "Rajasthan", "bad", "9876543210"))
}
