package user

import (
	"shipease/internal/entities"
)

func ToDomain(d *UserDoc) *entities.User {
	if d == nil {
		return nil
	}

	return &entities.User{
		ID:          d.ID.Hex(),
		Email:       d.Email,
		DisplayName: d.Name,
		Type:        d.Type,
	}
}

func FromDomainModify(m *entities.UserModify) *UserDoc {
	doc := &UserDoc{
		Name: m.DisplayName,
		Type: m.Type,
	}
	if m.Email != nil {
		doc.Email = *m.Email
	}
	return doc
}

func ToDomainList(docs []UserDoc) []entities.User {
	if len(docs) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(docs))
	for i := range docs {
		result[i] = *ToDomain(&docs[i])
	}
	return result
}
