package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleOrdinary = "ordinary"
	RoleAdmin    = "admin"

	StatusPending = "pending"
)

type Book struct {
	Id         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name" validate:"required"`
	Category   string             `bson:"category" json:"category"`
	Author     string             `bson:"author" json:"author"`
	Translator string             `bson:"translator" json:"translator"`
	Publisher  string             `bson:"publisher" json:"publisher"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Image      []byte             `bson:"image" json:"image"`
	ImageType  string             `bson:"imageType,omitempty" json:"imageType,omitempty"`
}

type User struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email       string             `bson:"email" json:"email" validate:"required"`
	DisplayName string             `bson:"displayName" json:"displayName"`
	Role        string             `bson:"role" json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// BookRef is the snapshot of a book a request was made for. It is copied
// from the client and never joined against the books collection.
type BookRef struct {
	Id       string `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Author   string `bson:"author,omitempty" json:"author,omitempty"`
	Category string `bson:"category,omitempty" json:"category,omitempty"`
}

type BookRequest struct {
	Id         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty" validate:"required"`
	Book       *BookRef           `bson:"book,omitempty" json:"book,omitempty"`
	Status     string             `bson:"status" json:"status"`
	ReturnDate string             `bson:"returnDate" json:"returnDate"`
	ReturnTime string             `bson:"returnTime" json:"returnTime"`
}

type RequestUpdate struct {
	Status     string `json:"status" validate:"required"`
	ReturnDate string `json:"returnDate"`
	ReturnTime string `json:"returnTime"`
}

type Review struct {
	Id     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email  string             `bson:"email" json:"email" validate:"required"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Review string             `bson:"review" json:"review"`
	Rating int                `bson:"rating" json:"rating"`
}

type InsertAck struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedId   primitive.ObjectID `json:"insertedId"`
}

type UpdateAck struct {
	Acknowledged  bool                `json:"acknowledged"`
	MatchedCount  int64               `json:"matchedCount"`
	ModifiedCount int64               `json:"modifiedCount"`
	UpsertedCount int64               `json:"upsertedCount"`
	UpsertedId    *primitive.ObjectID `json:"upsertedId"`
}

type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type HandleGetBooksResponse struct {
	Count int64  `json:"count"`
	Books []Book `json:"books"`
}

type HandleMakeAdminRequest struct {
	Email string `json:"email" validate:"required"`
}

type HandleCheckAdminResponse struct {
	Admin bool `json:"admin"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
