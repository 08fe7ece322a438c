package Models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ResolvedPatient is the union shape of a hit in either the patients chart
// table or the self-service profiles table.
type ResolvedPatient struct {
	Source             string `json:"source"` // "patients" or "patient_profiles"
	RecordID           uint   `json:"record_id"`
	Name               string `json:"name"`
	PatientNumber      string `json:"patient_id"`
	Age                int    `json:"age"`
	Gender             string `json:"gender"`
	Phone              string `json:"phone"`
	Address            string `json:"address"`
	Allergies          string `json:"allergies"`
	CurrentMedications string `json:"current_medications"`
}

func resolvedFromPatient(p Patient) *ResolvedPatient {
	return &ResolvedPatient{
		Source:             "patients",
		RecordID:           p.ID,
		Name:               p.Name,
		PatientNumber:      p.PatientNumber,
		Age:                p.Age,
		Gender:             p.Gender,
		Phone:              p.Phone,
		Address:            p.Address,
		Allergies:          p.Allergies,
		CurrentMedications: p.CurrentMedications,
	}
}

func resolvedFromProfile(p PatientProfile) *ResolvedPatient {
	return &ResolvedPatient{
		Source:             "patient_profiles",
		RecordID:           p.ID,
		Name:               p.Name,
		PatientNumber:      p.PatientNumber,
		Age:                p.Age,
		Gender:             p.Gender,
		Phone:              p.Phone,
		Address:            p.Address,
		Allergies:          p.Allergies,
		CurrentMedications: p.CurrentMedications,
	}
}

// ResolvePatient matches a typed name and/or patient number against both
// patient tables. Order, first hit wins:
//
//  1. exact patient number in patients
//  2. exact name in patients
//  3. exact patient number, then exact name, in patient_profiles
//  4. case-insensitive substring scan of both tables, patient number first,
//     then name
//
// Returns nil, nil when every step exhausts. There is no ranking among
// multiple substring hits; the first row encountered wins.
func ResolvePatient(db *gorm.DB, patientNumber, name string) (*ResolvedPatient, error) {
	patientNumber = strings.TrimSpace(patientNumber)
	name = strings.TrimSpace(name)
	if patientNumber == "" && name == "" {
		return nil, nil
	}

	if patientNumber != "" {
		var patient Patient
		err := db.Where("patient_number = ?", patientNumber).First(&patient).Error
		if err == nil {
			return resolvedFromPatient(patient), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if name != "" {
		var patient Patient
		err := db.Where("name = ?", name).First(&patient).Error
		if err == nil {
			return resolvedFromPatient(patient), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if patientNumber != "" {
		var profile PatientProfile
		err := db.Where("patient_number = ?", patientNumber).First(&profile).Error
		if err == nil {
			return resolvedFromProfile(profile), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if name != "" {
		var profile PatientProfile
		err := db.Where("name = ?", name).First(&profile).Error
		if err == nil {
			return resolvedFromProfile(profile), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	// Last resort: pull everything and scan. O(table size); the tables are
	// small enough that the original did the same.
	var patients []Patient
	if err := db.Find(&patients).Error; err != nil {
		return nil, err
	}
	var profiles []PatientProfile
	if err := db.Find(&profiles).Error; err != nil {
		return nil, err
	}

	lowerNumber := strings.ToLower(patientNumber)
	lowerName := strings.ToLower(name)

	if lowerNumber != "" {
		for _, patient := range patients {
			if strings.Contains(strings.ToLower(patient.PatientNumber), lowerNumber) {
				return resolvedFromPatient(patient), nil
			}
		}
		for _, profile := range profiles {
			if strings.Contains(strings.ToLower(profile.PatientNumber), lowerNumber) {
				return resolvedFromProfile(profile), nil
			}
		}
	}

	if lowerName != "" {
		for _, patient := range patients {
			if strings.Contains(strings.ToLower(patient.Name), lowerName) {
				return resolvedFromPatient(patient), nil
			}
		}
		for _, profile := range profiles {
			if strings.Contains(strings.ToLower(profile.Name), lowerName) {
				return resolvedFromProfile(profile), nil
			}
		}
	}

	return nil, nil
}
