// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/danielhkuo/consideration-vault/models"
)

type assessmentKind struct {
	name    string
	table   string
	alias   string
	columns []string
}

// assessmentKinds is the fixed insert order. formValues and recordTargets
// must list their fields in the same order as columns.
var assessmentKinds = []assessmentKind{
	{
		name:    "faith",
		table:   "faith_assessments",
		alias:   "f",
		columns: []string{"is_catholic", "practices_faith", "shared_moral_values", "helps_get_to_heaven", "notes"},
	},
	{
		name:  "character",
		table: "character_assessments",
		alias: "ch",
		columns: []string{
			"friendly", "happy", "polite", "proud", "discretion", "charitable", "humble", "kind",
			"positive_attitude", "courageous", "self_effacing", "dating_history",
			"traditional_values", "political_alignment", "notes",
		},
	},
	{
		name:  "children",
		table: "children_assessments",
		alias: "chi",
		columns: []string{
			"wants_children", "number_of_children", "will_raise_catholic", "likes_children",
			"children_gravitate", "nurturing", "excited_about_babies", "notes",
		},
	},
	{
		name:  "friendship",
		table: "friendship_assessments",
		alias: "fr",
		columns: []string{
			"fun", "shared_interests", "adventurous", "outdoorsy", "curious", "creative",
			"conversation", "communication", "conflict_resolution", "unselfish", "enjoyable_company", "notes",
		},
	},
	{
		name:  "family",
		table: "family_assessments",
		alias: "fa",
		columns: []string{
			"solid_family_background", "parents_marital_status", "family_values", "family_functioning",
			"sibling_relationships", "enjoy_family", "friend_group", "gets_along_with_your_family",
			"gets_along_with_your_friends", "possessive", "notes",
		},
	},
	{
		name:  "business",
		table: "business_assessments",
		alias: "b",
		columns: []string{
			"saver", "wasteful", "maintenance", "willing_to_sacrifice", "risk_taker", "debt",
			"financial_responsibility", "self_starter", "notes",
		},
	},
	{
		name:    "roommate",
		table:   "roommate_assessments",
		alias:   "r",
		columns: []string{"tidiness", "dishes", "personal_space", "housekeeping", "shares_burden", "notes"},
	},
	{
		name:    "physical",
		table:   "physical_assessments",
		alias:   "p",
		columns: []string{"attraction", "fitness", "health_conscious", "hygiene", "family_longevity", "notes"},
	},
}

func (k assessmentKind) insertSQL() string {
	placeholders := make([]string, len(k.columns)+1)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (consideration_id, %s) VALUES (%s)",
		k.table, strings.Join(k.columns, ", "), strings.Join(placeholders, ", "))
}

func (k assessmentKind) deleteSQL() string {
	return "DELETE FROM " + k.table + " WHERE consideration_id = $1"
}

func formValues(f *models.ConsiderationForm) [][]any {
	return [][]any{
		{f.Faith.IsCatholic, f.Faith.PracticesFaith, f.Faith.SharedMoralValues, f.Faith.HelpsGetToHeaven, f.Faith.Notes},
		{
			f.Character.Friendly, f.Character.Happy, f.Character.Polite, f.Character.Proud,
			f.Character.Discretion, f.Character.Charitable, f.Character.Humble, f.Character.Kind,
			f.Character.PositiveAttitude, f.Character.Courageous, f.Character.SelfEffacing, f.Character.DatingHistory,
			f.Character.TraditionalValues, f.Character.PoliticalAlignment, f.Character.Notes,
		},
		{
			f.Children.WantsChildren, f.Children.NumberOfChildren, f.Children.WillRaiseCatholic, f.Children.LikesChildren,
			f.Children.ChildrenGravitate, f.Children.Nurturing, f.Children.ExcitedAboutBabies, f.Children.Notes,
		},
		{
			f.Friendship.Fun, f.Friendship.SharedInterests, f.Friendship.Adventurous, f.Friendship.Outdoorsy,
			f.Friendship.Curious, f.Friendship.Creative, f.Friendship.Conversation, f.Friendship.Communication,
			f.Friendship.ConflictResolution, f.Friendship.Unselfish, f.Friendship.EnjoyableCompany, f.Friendship.Notes,
		},
		{
			f.FamilyAndFriends.SolidFamilyBackground, f.FamilyAndFriends.ParentsMaritalStatus,
			f.FamilyAndFriends.FamilyValues, f.FamilyAndFriends.FamilyFunctioning,
			f.FamilyAndFriends.SiblingRelationships, f.FamilyAndFriends.EnjoyFamily, f.FamilyAndFriends.FriendGroup,
			f.FamilyAndFriends.GetsAlongWithYourFamily, f.FamilyAndFriends.GetsAlongWithYourFriends,
			f.FamilyAndFriends.Possessive, f.FamilyAndFriends.Notes,
		},
		{
			f.BusinessPartner.Saver, f.BusinessPartner.Wasteful, f.BusinessPartner.Maintenance,
			f.BusinessPartner.WillingToSacrifice, f.BusinessPartner.RiskTaker, f.BusinessPartner.Debt,
			f.BusinessPartner.FinancialResponsibility, f.BusinessPartner.SelfStarter, f.BusinessPartner.Notes,
		},
		{
			f.Roommate.Tidiness, f.Roommate.Dishes, f.Roommate.PersonalSpace, f.Roommate.Housekeeping,
			f.Roommate.SharesBurden, f.Roommate.Notes,
		},
		{
			f.PhysicalAttraction.Attraction, f.PhysicalAttraction.Fitness, f.PhysicalAttraction.HealthConscious,
			f.PhysicalAttraction.Hygiene, f.PhysicalAttraction.FamilyLongevity, f.PhysicalAttraction.Notes,
		},
	}
}

func recordTargets(c *models.Consideration) [][]any {
	return [][]any{
		{&c.Faith.IsCatholic, &c.Faith.PracticesFaith, &c.Faith.SharedMoralValues, &c.Faith.HelpsGetToHeaven, &c.Faith.Notes},
		{
			&c.Character.Friendly, &c.Character.Happy, &c.Character.Polite, &c.Character.Proud,
			&c.Character.Discretion, &c.Character.Charitable, &c.Character.Humble, &c.Character.Kind,
			&c.Character.PositiveAttitude, &c.Character.Courageous, &c.Character.SelfEffacing, &c.Character.DatingHistory,
			&c.Character.TraditionalValues, &c.Character.PoliticalAlignment, &c.Character.Notes,
		},
		{
			&c.Children.WantsChildren, &c.Children.NumberOfChildren, &c.Children.WillRaiseCatholic, &c.Children.LikesChildren,
			&c.Children.ChildrenGravitate, &c.Children.Nurturing, &c.Children.ExcitedAboutBabies, &c.Children.Notes,
		},
		{
			&c.Friendship.Fun, &c.Friendship.SharedInterests, &c.Friendship.Adventurous, &c.Friendship.Outdoorsy,
			&c.Friendship.Curious, &c.Friendship.Creative, &c.Friendship.Conversation, &c.Friendship.Communication,
			&c.Friendship.ConflictResolution, &c.Friendship.Unselfish, &c.Friendship.EnjoyableCompany, &c.Friendship.Notes,
		},
		{
			&c.Family.SolidFamilyBackground, &c.Family.ParentsMaritalStatus, &c.Family.FamilyValues,
			&c.Family.FamilyFunctioning, &c.Family.SiblingRelationships, &c.Family.EnjoyFamily, &c.Family.FriendGroup,
			&c.Family.GetsAlongWithYourFamily, &c.Family.GetsAlongWithYourFriends, &c.Family.Possessive, &c.Family.Notes,
		},
		{
			&c.Business.Saver, &c.Business.Wasteful, &c.Business.Maintenance, &c.Business.WillingToSacrifice,
			&c.Business.RiskTaker, &c.Business.Debt, &c.Business.FinancialResponsibility, &c.Business.SelfStarter,
			&c.Business.Notes,
		},
		{
			&c.Roommate.Tidiness, &c.Roommate.Dishes, &c.Roommate.PersonalSpace, &c.Roommate.Housekeeping,
			&c.Roommate.SharesBurden, &c.Roommate.Notes,
		},
		{
			&c.Physical.Attraction, &c.Physical.Fitness, &c.Physical.HealthConscious, &c.Physical.Hygiene,
			&c.Physical.FamilyLongevity, &c.Physical.Notes,
		},
	}
}

var (
	ratingType    = reflect.TypeOf(models.Rating(0))
	ratingPtrType = reflect.TypeOf((*models.Rating)(nil))
)

// validateRatings walks every assessment block of the form and rejects the
// first Rating outside 1-5, naming it by its JSON path (e.g. "faith.practicesFaith").
func validateRatings(f *models.ConsiderationForm) error {
	v := reflect.ValueOf(f).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		block := v.Field(i)
		if block.Kind() != reflect.Struct {
			continue
		}
		bt := block.Type()
		for j := 0; j < bt.NumField(); j++ {
			if bt.Field(j).Type != ratingType {
				continue
			}
			if r := models.Rating(block.Field(j).Int()); !r.Valid() {
				return &ValidationError{
					Field:   jsonName(t.Field(i)) + "." + jsonName(bt.Field(j)),
					Message: fmt.Sprintf("rating must be between %d and %d", models.RatingMin, models.RatingMax),
				}
			}
		}
	}
	return nil
}

// averageRating is the mean of every non-null Rating across the eight
// assessments, rounded to one decimal. Nil when there are none.
func averageRating(c *models.Consideration) *float64 {
	blocks := []any{&c.Faith, &c.Character, &c.Children, &c.Friendship, &c.Family, &c.Business, &c.Roommate, &c.Physical}

	var sum, n int64
	for _, b := range blocks {
		v := reflect.ValueOf(b).Elem()
		for j := 0; j < v.NumField(); j++ {
			field := v.Field(j)
			if field.Type() != ratingPtrType || field.IsNil() {
				continue
			}
			sum += field.Elem().Int()
			n++
		}
	}
	if n == 0 {
		return nil
	}

	avg := math.Round(float64(sum)/float64(n)*10) / 10
	return &avg
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}
