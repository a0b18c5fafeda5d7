// Package validation turns raw client input into validated records.
// Every function is pure: it returns either the validated value or a
// non-empty set of field errors.
package validation

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sbilibin2017/dev-connect/internal/models"
)

const (
	nameMinLen     = 2
	nameMaxLen     = 50
	passwordMinLen = 6
	// bcrypt hashes at most 72 bytes and rejects longer input.
	passwordMaxBytes = 72
	ageMin         = 7
	ageMax         = 100
)

// Profile fields accepted by ValidateProfileEdit.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldAge       = "age"
	FieldGender    = "gender"
	FieldPhotoURL  = "photoUrl"
)

// FieldDisallowed is the error key listing fields that may not be edited.
const FieldDisallowed = "disallowedFields"

var (
	htmlPolicy  = bluemonday.StrictPolicy()
	namePattern = regexp.MustCompile(`^[a-zA-Z\s]*$`)

	editableFields = map[string]bool{
		FieldFirstName: true,
		FieldLastName:  true,
		FieldAge:       true,
		FieldGender:    true,
		FieldPhotoURL:  true,
	}
)

// FieldErrors maps a field name to a human readable problem.
type FieldErrors map[string]string

// Empty reports whether no errors were recorded.
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

// ValidateSignup validates a registration request. The returned NewUser has
// no password hash yet.
func ValidateSignup(req models.SignupRequest) (models.NewUser, FieldErrors) {
	errs := FieldErrors{}
	var user models.NewUser

	if name, msg := validateName(FieldFirstName, req.FirstName, true); msg != "" {
		errs[FieldFirstName] = msg
	} else {
		user.FirstName = name
	}

	if req.LastName != nil && strings.TrimSpace(*req.LastName) != "" {
		if name, msg := validateName(FieldLastName, *req.LastName, false); msg != "" {
			errs[FieldLastName] = msg
		} else {
			user.LastName = &name
		}
	}

	if email, msg := validateEmail(req.Email); msg != "" {
		errs[FieldEmail] = msg
	} else {
		user.Email = email
	}

	if msg := ValidatePassword(req.Password); msg != "" {
		errs[FieldPassword] = msg
	}

	if req.Age != nil {
		if msg := validateAge(*req.Age); msg != "" {
			errs[FieldAge] = msg
		} else {
			age := *req.Age
			user.Age = &age
		}
	}

	if req.Gender != nil && *req.Gender != "" {
		if gender, msg := validateGender(*req.Gender); msg != "" {
			errs[FieldGender] = msg
		} else {
			user.Gender = &gender
		}
	}

	user.PhotoURL = models.DefaultPhotoURL
	if req.PhotoURL != nil && strings.TrimSpace(*req.PhotoURL) != "" {
		if photo, msg := validatePhotoURL(*req.PhotoURL); msg != "" {
			errs[FieldPhotoURL] = msg
		} else {
			user.PhotoURL = photo
		}
	}

	return user, errs
}

// ValidateProfileEdit validates a partial profile update given as raw JSON
// fields. Fields outside the editable set are reported under FieldDisallowed.
func ValidateProfileEdit(raw map[string]json.RawMessage) (models.ProfileUpdate, FieldErrors) {
	errs := FieldErrors{}
	var upd models.ProfileUpdate

	var disallowed []string
	for field := range raw {
		if !editableFields[field] {
			disallowed = append(disallowed, field)
		}
	}
	if len(disallowed) > 0 {
		sort.Strings(disallowed)
		errs[FieldDisallowed] = "Fields not allowed for editing: " + strings.Join(disallowed, ", ")
	}

	if v, ok := raw[FieldFirstName]; ok {
		s, isNull, err := decodeString(v)
		switch {
		case err != nil:
			errs[FieldFirstName] = "firstName must be a string"
		case isNull || strings.TrimSpace(s) == "":
			errs[FieldFirstName] = "firstName is required"
		default:
			if name, msg := validateName(FieldFirstName, s, true); msg != "" {
				errs[FieldFirstName] = msg
			} else {
				upd.FirstName = &name
			}
		}
	}

	if v, ok := raw[FieldLastName]; ok {
		s, isNull, err := decodeString(v)
		switch {
		case err != nil:
			errs[FieldLastName] = "lastName must be a string"
		case isNull || strings.TrimSpace(s) == "":
		default:
			if name, msg := validateName(FieldLastName, s, false); msg != "" {
				errs[FieldLastName] = msg
			} else {
				upd.LastName = &name
			}
		}
	}

	if v, ok := raw[FieldAge]; ok && !isJSONNull(v) {
		if age, err := decodeInt(v); err != nil {
			errs[FieldAge] = fmt.Sprintf("Age must be between %d and %d", ageMin, ageMax)
		} else if msg := validateAge(age); msg != "" {
			errs[FieldAge] = msg
		} else {
			upd.Age = &age
		}
	}

	if v, ok := raw[FieldGender]; ok && !isJSONNull(v) {
		s, _, err := decodeString(v)
		if err != nil {
			errs[FieldGender] = "Gender must be either male, female, or other"
		} else if s != "" {
			if gender, msg := validateGender(s); msg != "" {
				errs[FieldGender] = msg
			} else {
				upd.Gender = &gender
			}
		}
	}

	if v, ok := raw[FieldPhotoURL]; ok && !isJSONNull(v) {
		s, _, err := decodeString(v)
		if err != nil {
			errs[FieldPhotoURL] = "Please provide a valid URL for the photo"
		} else if s != "" {
			if photo, msg := validatePhotoURL(s); msg != "" {
				errs[FieldPhotoURL] = msg
			} else {
				upd.PhotoURL = &photo
			}
		}
	}

	return upd, errs
}

// ValidatePassword checks password strength. It returns an empty string when
// the password is acceptable.
func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	n := utf8.RuneCountInString(password)
	if n < passwordMinLen {
		return fmt.Sprintf("Password must be at least %d characters long", passwordMinLen)
	}
	if len(password) > passwordMaxBytes {
		return fmt.Sprintf("Password cannot exceed %d bytes", passwordMaxBytes)
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return "Password must contain at least one uppercase letter, one lowercase letter, one number and one special character"
	}
	return ""
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateName(field, value string, required bool) (string, string) {
	name := strings.TrimSpace(htmlPolicy.Sanitize(value))
	if name == "" {
		if required {
			return "", field + " is required"
		}
		return "", ""
	}
	n := utf8.RuneCountInString(name)
	if n < nameMinLen || n > nameMaxLen {
		return "", fmt.Sprintf("%s must be between %d and %d characters", field, nameMinLen, nameMaxLen)
	}
	if !namePattern.MatchString(name) {
		return "", field + " can only contain letters and spaces"
	}
	return name, ""
}

func validateEmail(value string) (string, string) {
	email := NormalizeEmail(value)
	if email == "" {
		return "", "Email is required"
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", "Please enter a valid email address"
	}
	at := strings.LastIndex(email, "@")
	if at < 1 || !strings.Contains(email[at+1:], ".") || strings.HasSuffix(email, ".") {
		return "", "Please enter a valid email address"
	}
	return email, ""
}

func validateAge(age int) string {
	if age < ageMin || age > ageMax {
		return fmt.Sprintf("Age must be between %d and %d", ageMin, ageMax)
	}
	return ""
}

func validateGender(value string) (string, string) {
	gender := strings.ToLower(strings.TrimSpace(value))
	switch gender {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		return gender, ""
	}
	return "", "Gender must be either male, female, or other"
}

func validatePhotoURL(value string) (string, string) {
	raw := strings.TrimSpace(value)
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", "Please provide a valid URL for the photo"
	}
	return raw, ""
}

func isJSONNull(v json.RawMessage) bool {
	return strings.TrimSpace(string(v)) == "null"
}

func decodeString(v json.RawMessage) (string, bool, error) {
	if isJSONNull(v) {
		return "", true, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false, err
	}
	return s, false, nil
}

// decodeInt accepts a JSON integer or a string holding one.
func decodeInt(v json.RawMessage) (int, error) {
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		i, err := strconv.Atoi(n.String())
		return i, err
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(s))
}
