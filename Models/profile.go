package Models

import (
	"time"

	"gorm.io/gorm"
)

// Merge-upsert for the per-user profile documents: create the row when
// absent, otherwise update only the submitted columns so fields the form
// left out keep their previous values.
func mergeUpsert(db *gorm.DB, model interface{}, userID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		fields = map[string]interface{}{}
	}
	fields["last_write_at"] = NewFlexTime(time.Now())

	var count int64
	if err := db.Model(model).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		fields["user_id"] = userID
		fields["created_at"] = time.Now()
		fields["updated_at"] = time.Now()
		return db.Model(model).Create(fields).Error
	}
	return db.Model(model).Where("user_id = ?", userID).Updates(fields).Error
}

func UpsertPatientProfile(db *gorm.DB, userID uint, fields map[string]interface{}) (PatientProfile, error) {
	var profile PatientProfile
	if err := mergeUpsert(db, &PatientProfile{}, userID, fields); err != nil {
		return profile, err
	}
	err := db.Where("user_id = ?", userID).First(&profile).Error
	return profile, err
}

func UpsertDoctorProfile(db *gorm.DB, userID uint, fields map[string]interface{}) (DoctorProfile, error) {
	var profile DoctorProfile
	if err := mergeUpsert(db, &DoctorProfile{}, userID, fields); err != nil {
		return profile, err
	}
	err := db.Where("user_id = ?", userID).First(&profile).Error
	return profile, err
}

func UpsertGeneralManagerProfile(db *gorm.DB, userID uint, fields map[string]interface{}) (GeneralManagerProfile, error) {
	var profile GeneralManagerProfile
	if err := mergeUpsert(db, &GeneralManagerProfile{}, userID, fields); err != nil {
		return profile, err
	}
	err := db.Where("user_id = ?", userID).First(&profile).Error
	return profile, err
}
