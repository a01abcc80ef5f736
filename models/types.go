package models

import (
	"database/sql/driver"
	"time"
)

// Rating is a 1-5 score for a single trait
type Rating int

const (
	RatingMin     Rating = 1
	RatingMax     Rating = 5
	RatingDefault Rating = 3
)

func (r Rating) Valid() bool {
	return r >= RatingMin && r <= RatingMax
}

// Value stores a Rating as a plain integer column
func (r Rating) Value() (driver.Value, error) {
	return int64(r), nil
}

// List sort orders
const (
	SortRecent = "recent"
	SortRating = "rating"
)

// DateLayout is the wire format of date_met
const DateLayout = "2006-01-02"

// Request types

type BasicInfo struct {
	Name    string `json:"name"`
	Age     string `json:"age"`
	DateMet string `json:"dateMet"`
}

type FaithForm struct {
	IsCatholic        bool   `json:"isCatholic"`
	PracticesFaith    Rating `json:"practicesFaith"`
	SharedMoralValues Rating `json:"sharedMoralValues"`
	HelpsGetToHeaven  Rating `json:"helpsGetToHeaven"`
	Notes             string `json:"notes"`
}

type CharacterForm struct {
	Friendly           Rating `json:"friendly"`
	Happy              Rating `json:"happy"`
	Polite             Rating `json:"polite"`
	Proud              Rating `json:"proud"`
	Discretion         Rating `json:"discretion"`
	Charitable         Rating `json:"charitable"`
	Humble             Rating `json:"humble"`
	Kind               Rating `json:"kind"`
	PositiveAttitude   Rating `json:"positiveAttitude"`
	Courageous         Rating `json:"courageous"`
	SelfEffacing       Rating `json:"selfEffacing"`
	DatingHistory      string `json:"datingHistory"`
	TraditionalValues  Rating `json:"traditionalValues"`
	PoliticalAlignment Rating `json:"politicalAlignment"`
	Notes              string `json:"notes"`
}

type ChildrenForm struct {
	WantsChildren      bool   `json:"wantsChildren"`
	NumberOfChildren   string `json:"numberOfChildren"`
	WillRaiseCatholic  bool   `json:"willRaiseCatholic"`
	LikesChildren      Rating `json:"likesChildren"`
	ChildrenGravitate  Rating `json:"childrenGravitate"`
	Nurturing          Rating `json:"nurturing"`
	ExcitedAboutBabies Rating `json:"excitedAboutBabies"`
	Notes              string `json:"notes"`
}

type FriendshipForm struct {
	Fun                Rating `json:"fun"`
	SharedInterests    Rating `json:"sharedInterests"`
	Adventurous        Rating `json:"adventurous"`
	Outdoorsy          Rating `json:"outdoorsy"`
	Curious            Rating `json:"curious"`
	Creative           Rating `json:"creative"`
	Conversation       Rating `json:"conversation"`
	Communication      Rating `json:"communication"`
	ConflictResolution Rating `json:"conflictResolution"`
	Unselfish          Rating `json:"unselfish"`
	EnjoyableCompany   Rating `json:"enjoyableCompany"`
	Notes              string `json:"notes"`
}

type FamilyForm struct {
	SolidFamilyBackground    Rating `json:"solidFamilyBackground"`
	ParentsMaritalStatus     string `json:"parentsMaritalStatus"`
	FamilyValues             Rating `json:"familyValues"`
	FamilyFunctioning        Rating `json:"familyFunctioning"`
	SiblingRelationships     Rating `json:"siblingRelationships"`
	EnjoyFamily              Rating `json:"enjoyFamily"`
	FriendGroup              Rating `json:"friendGroup"`
	GetsAlongWithYourFamily  Rating `json:"getsAlongWithYourFamily"`
	GetsAlongWithYourFriends Rating `json:"getsAlongWithYourFriends"`
	Possessive               Rating `json:"possessive"`
	Notes                    string `json:"notes"`
}

type BusinessForm struct {
	Saver                   Rating `json:"saver"`
	Wasteful                Rating `json:"wasteful"`
	Maintenance             Rating `json:"maintenance"`
	WillingToSacrifice      Rating `json:"willingToSacrifice"`
	RiskTaker               Rating `json:"riskTaker"`
	Debt                    string `json:"debt"`
	FinancialResponsibility Rating `json:"financialResponsibility"`
	SelfStarter             Rating `json:"selfStarter"`
	Notes                   string `json:"notes"`
}

type RoommateForm struct {
	Tidiness      Rating `json:"tidiness"`
	Dishes        Rating `json:"dishes"`
	PersonalSpace Rating `json:"personalSpace"`
	Housekeeping  Rating `json:"housekeeping"`
	SharesBurden  Rating `json:"sharesBurden"`
	Notes         string `json:"notes"`
}

type PhysicalForm struct {
	Attraction      Rating `json:"attraction"`
	Fitness         Rating `json:"fitness"`
	HealthConscious Rating `json:"healthConscious"`
	Hygiene         Rating `json:"hygiene"`
	FamilyLongevity Rating `json:"familyLongevity"`
	Notes           string `json:"notes"`
}

// ConsiderationForm is one complete submission: basic info plus all eight assessments
type ConsiderationForm struct {
	BasicInfo          BasicInfo      `json:"basicInfo"`
	Faith              FaithForm      `json:"faith"`
	Character          CharacterForm  `json:"character"`
	Children           ChildrenForm   `json:"children"`
	Friendship         FriendshipForm `json:"friendship"`
	FamilyAndFriends   FamilyForm     `json:"familyAndFriends"`
	BusinessPartner    BusinessForm   `json:"businessPartner"`
	Roommate           RoommateForm   `json:"roommate"`
	PhysicalAttraction PhysicalForm   `json:"physicalAttraction"`
	OverallNotes       string         `json:"overallNotes"`
}

type CreateConsiderationRequest struct {
	AuthorEmail string `json:"authorEmail"`
	ConsiderationForm
}

type DeleteConsiderationRequest struct {
	Email string `json:"email"`
}

// Response types

type CreateConsiderationResponse struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message,omitempty"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Domain types
//
// Assessment fields are pointers: a missing child row reads back as an
// object of nulls rather than an absent key.

type FaithAssessment struct {
	IsCatholic        *bool   `json:"is_catholic"`
	PracticesFaith    *Rating `json:"practices_faith"`
	SharedMoralValues *Rating `json:"shared_moral_values"`
	HelpsGetToHeaven  *Rating `json:"helps_get_to_heaven"`
	Notes             *string `json:"notes"`
}

type CharacterAssessment struct {
	Friendly           *Rating `json:"friendly"`
	Happy              *Rating `json:"happy"`
	Polite             *Rating `json:"polite"`
	Proud              *Rating `json:"proud"`
	Discretion         *Rating `json:"discretion"`
	Charitable         *Rating `json:"charitable"`
	Humble             *Rating `json:"humble"`
	Kind               *Rating `json:"kind"`
	PositiveAttitude   *Rating `json:"positive_attitude"`
	Courageous         *Rating `json:"courageous"`
	SelfEffacing       *Rating `json:"self_effacing"`
	DatingHistory      *string `json:"dating_history"`
	TraditionalValues  *Rating `json:"traditional_values"`
	PoliticalAlignment *Rating `json:"political_alignment"`
	Notes              *string `json:"notes"`
}

type ChildrenAssessment struct {
	WantsChildren      *bool   `json:"wants_children"`
	NumberOfChildren   *string `json:"number_of_children"`
	WillRaiseCatholic  *bool   `json:"will_raise_catholic"`
	LikesChildren      *Rating `json:"likes_children"`
	ChildrenGravitate  *Rating `json:"children_gravitate"`
	Nurturing          *Rating `json:"nurturing"`
	ExcitedAboutBabies *Rating `json:"excited_about_babies"`
	Notes              *string `json:"notes"`
}

type FriendshipAssessment struct {
	Fun                *Rating `json:"fun"`
	SharedInterests    *Rating `json:"shared_interests"`
	Adventurous        *Rating `json:"adventurous"`
	Outdoorsy          *Rating `json:"outdoorsy"`
	Curious            *Rating `json:"curious"`
	Creative           *Rating `json:"creative"`
	Conversation       *Rating `json:"conversation"`
	Communication      *Rating `json:"communication"`
	ConflictResolution *Rating `json:"conflict_resolution"`
	Unselfish          *Rating `json:"unselfish"`
	EnjoyableCompany   *Rating `json:"enjoyable_company"`
	Notes              *string `json:"notes"`
}

type FamilyAssessment struct {
	SolidFamilyBackground    *Rating `json:"solid_family_background"`
	ParentsMaritalStatus     *string `json:"parents_marital_status"`
	FamilyValues             *Rating `json:"family_values"`
	FamilyFunctioning        *Rating `json:"family_functioning"`
	SiblingRelationships     *Rating `json:"sibling_relationships"`
	EnjoyFamily              *Rating `json:"enjoy_family"`
	FriendGroup              *Rating `json:"friend_group"`
	GetsAlongWithYourFamily  *Rating `json:"gets_along_with_your_family"`
	GetsAlongWithYourFriends *Rating `json:"gets_along_with_your_friends"`
	Possessive               *Rating `json:"possessive"`
	Notes                    *string `json:"notes"`
}

type BusinessAssessment struct {
	Saver                   *Rating `json:"saver"`
	Wasteful                *Rating `json:"wasteful"`
	Maintenance             *Rating `json:"maintenance"`
	WillingToSacrifice      *Rating `json:"willing_to_sacrifice"`
	RiskTaker               *Rating `json:"risk_taker"`
	Debt                    *string `json:"debt"`
	FinancialResponsibility *Rating `json:"financial_responsibility"`
	SelfStarter             *Rating `json:"self_starter"`
	Notes                   *string `json:"notes"`
}

type RoommateAssessment struct {
	Tidiness      *Rating `json:"tidiness"`
	Dishes        *Rating `json:"dishes"`
	PersonalSpace *Rating `json:"personal_space"`
	Housekeeping  *Rating `json:"housekeeping"`
	SharesBurden  *Rating `json:"shares_burden"`
	Notes         *string `json:"notes"`
}

type PhysicalAssessment struct {
	Attraction      *Rating `json:"attraction"`
	Fitness         *Rating `json:"fitness"`
	HealthConscious *Rating `json:"health_conscious"`
	Hygiene         *Rating `json:"hygiene"`
	FamilyLongevity *Rating `json:"family_longevity"`
	Notes           *string `json:"notes"`
}

// Consideration is one stored record reassembled from its nine rows
type Consideration struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Age           *int      `json:"age"`
	DateMet       *string   `json:"date_met"`
	OverallNotes  *string   `json:"overall_notes"`
	AuthorEmail   string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	CreatedAgo    string    `json:"created_ago"`
	AverageRating *float64  `json:"average_rating"`

	Faith      FaithAssessment      `json:"faith_assessment"`
	Character  CharacterAssessment  `json:"character_assessment"`
	Children   ChildrenAssessment   `json:"children_assessment"`
	Friendship FriendshipAssessment `json:"friendship_assessment"`
	Family     FamilyAssessment     `json:"family_assessment"`
	Business   BusinessAssessment   `json:"business_assessment"`
	Roommate   RoommateAssessment   `json:"roommate_assessment"`
	Physical   PhysicalAssessment   `json:"physical_assessment"`
}

// User is a signed-in account as reported by the OAuth provider
type User struct {
	ID        string     `json:"id,omitempty"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Image     *string    `json:"image,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type UpsertUserResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message,omitempty"`
}

type ListUsersResponse struct {
	Users []User `json:"users"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}
