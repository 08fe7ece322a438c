package Models

import (
	"MindCare/Constants"
	"MindCare/Utils/Token"
	"errors"
	"html"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username   string        `gorm:"size:255;not null;unique" json:"username"`
	Password   string        `gorm:"size:255;not null;" json:"password"`
	Permission int           `json:"permission"`
	Tokens     []DeviceToken `gorm:"foreignKey:UserID"`
	IsFrozen   bool          `json:"is_frozen"`
}

type DeviceToken struct {
	gorm.Model
	UserID uint
	Value  string `json:"value" gorm:"unique"`
}

func GetUserByID(uid uint) (User, error) {
	var user User

	if err := DB.First(&user, uid).Error; err != nil {
		return user, errors.New("User not found")
	}

	user.PrepareGive()

	return user, nil
}

// GetStaffFCMs collects the device tokens of every clinic-staff or higher
// user, deduplicated, for booking/feedback pushes.
func GetStaffFCMs() ([]string, error) {
	var users []User
	if err := DB.Where("permission >= ?", Constants.PermissionAdmin).Find(&users).Error; err != nil {
		return nil, err
	}

	uniqueFCMs := make(map[string]struct{})
	for _, staffUser := range users {
		var tokens []DeviceToken
		if err := DB.Where("user_id = ?", staffUser.ID).Find(&tokens).Error; err != nil {
			return nil, err
		}
		for _, token := range tokens {
			uniqueFCMs[token.Value] = struct{}{}
		}
	}

	fcms := make([]string, 0, len(uniqueFCMs))
	for token := range uniqueFCMs {
		fcms = append(fcms, token)
	}
	return fcms, nil
}

func (user *User) PrepareGive() {
	user.Password = ""
}

func VerifyPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func LoginCheck(username string, password string) (uint, string, error) {
	var err error

	user := User{}

	err = DB.Model(User{}).Where("username = ?", username).Take(&user).Error

	if err != nil {
		return 0, "", err
	}

	err = VerifyPassword(password, user.Password)

	if err != nil && err == bcrypt.ErrMismatchedHashAndPassword {
		return 0, "", err
	}

	token, err := Token.GenerateToken(user.ID)

	if err != nil {
		return 0, "", err
	}

	return user.ID, token, nil
}

func (user *User) SaveUser() (*User, error) {
	if err := user.BeforeSave(); err != nil {
		return &User{}, err
	}

	if err := DB.Create(&user).Error; err != nil {
		return &User{}, err
	}

	return user, nil
}

func (user *User) BeforeSave() error {
	//turn password into hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	//remove spaces in username
	user.Username = html.EscapeString(strings.TrimSpace(user.Username))

	return nil
}
