package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListRoundTrip(t *testing.T) {
	days := StringList{"Monday", "Wednesday", "Friday"}

	value, err := days.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, days, scanned)
}

func TestStringListEmptyValueIsNull(t *testing.T) {
	var days StringList

	value, err := days.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	var scanned StringList
	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestStringListContains(t *testing.T) {
	days := StringList{"Monday", "Tuesday"}

	assert.True(t, days.Contains("Monday"))
	assert.False(t, days.Contains("Sunday"))
	assert.False(t, StringList(nil).Contains("Monday"))
}

func TestJSONRoundTrip(t *testing.T) {
	metadata := JSON{"role": "doctor", "code": "DOC-001"}

	value, err := metadata.Value()
	require.NoError(t, err)

	var scanned JSON
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, "doctor", scanned["role"])
	assert.Equal(t, "DOC-001", scanned["code"])
}

func TestJSONScanString(t *testing.T) {
	var scanned JSON
	require.NoError(t, scanned.Scan(`{"amount":"150.00"}`))
	assert.Equal(t, "150.00", scanned["amount"])
}

func TestJSONScanUnsupportedType(t *testing.T) {
	var scanned JSON
	assert.Error(t, scanned.Scan(42))
}

func TestMedicineListRoundTrip(t *testing.T) {
	medicines := MedicineList{
		{Name: "Amoxicillin", Dosage: "500mg", Frequency: "3x daily", Duration: "7 days"},
		{Name: "Ibuprofen", Dosage: "200mg", Frequency: "as needed", Duration: "5 days", Instructions: "after meals"},
	}

	value, err := medicines.Value()
	require.NoError(t, err)

	var scanned MedicineList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, medicines, scanned)
}

func TestDoctorAvailableOn(t *testing.T) {
	doctor := &DoctorProfile{AvailableDays: StringList{"Monday", "Thursday"}}

	assert.True(t, doctor.AvailableOn(time.Monday))
	assert.False(t, doctor.AvailableOn(time.Sunday))
}

func TestAccountIsApproved(t *testing.T) {
	patient := &Account{Role: RolePatient, Status: StatusPending}
	assert.True(t, patient.IsApproved())

	doctor := &Account{Role: RoleDoctor, Status: StatusPending}
	assert.False(t, doctor.IsApproved())

	doctor.Status = StatusApproved
	assert.True(t, doctor.IsApproved())
}
