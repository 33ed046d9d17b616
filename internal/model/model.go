package model

import (
	"fmt"
	"time"
)

type BookStatus string

const (
	BookAvailable     BookStatus = "Available"
	BookCheckedOut    BookStatus = "Checked Out"
	BookOnHold        BookStatus = "On Hold"
	BookPendingPickup BookStatus = "Pending Pickup"
	BookLost          BookStatus = "Lost"
	BookRetired       BookStatus = "Retired"
)

type Condition string

const (
	ConditionNew      Condition = "New"
	ConditionLikeNew  Condition = "Like New"
	ConditionVeryGood Condition = "Very Good"
	ConditionGood     Condition = "Good"
	ConditionFair     Condition = "Fair"
	ConditionPoor     Condition = "Poor"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

type HoldStatus string

const (
	HoldActive    HoldStatus = "active"
	HoldFulfilled HoldStatus = "fulfilled"
	HoldCancelled HoldStatus = "cancelled"
	HoldExpired   HoldStatus = "expired"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestScheduled RequestStatus = "scheduled"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

type NotificationType string

const (
	NotifyCheckoutRequest  NotificationType = "checkout_request"
	NotifyRequestApproved  NotificationType = "request_approved"
	NotifyRequestCancelled NotificationType = "request_cancelled"
	NotifyWindowSelected   NotificationType = "window_selected"
	NotifyGeneral          NotificationType = "general"
)

// HoldDuration is how long a placed hold reserves a book.
const HoldDuration = 24 * time.Hour

// Display-id prefixes. Formats are 1-based and zero-padded to 4 digits.
const (
	BookIDPrefix        = "BID"
	MemberIDPrefix      = "MID"
	TransactionIDPrefix = "TID"
)

func FormatDisplayID(prefix string, n int64) string {
	return fmt.Sprintf("%s-%04d", prefix, n)
}

// Meta carries store identity for a loaded document. It is not part of the
// document body.
type Meta struct {
	DocID   string `json:"-"`
	Version int64  `json:"-"`
}

func (m *Meta) SetMeta(docID string, version int64) {
	m.DocID = docID
	m.Version = version
}

// Actor is the resolved caller identity for a core operation. Role comes from
// the member record, not from the token.
type Actor struct {
	DocID     string
	DisplayID string
	Name      string
	Role      Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

type Book struct {
	Meta
	DisplayID       string     `json:"displayId" validate:"required"`
	Title           string     `json:"title" validate:"required"`
	AuthorLast      string     `json:"authorLast" validate:"required"`
	AuthorFirst     string     `json:"authorFirst"`
	Author2Last     *string    `json:"author2Last"`
	Author2First    *string    `json:"author2First"`
	Genre           string     `json:"genre"`
	IsYA            bool       `json:"isYA"`
	Condition       Condition  `json:"condition" validate:"required,oneof=New 'Like New' 'Very Good' Good Fair Poor"`
	Status          BookStatus `json:"status" validate:"required,oneof=Available 'Checked Out' 'On Hold' 'Pending Pickup' Lost Retired"`
	TimesCheckedOut int        `json:"timesCheckedOut" validate:"min=0"`
	DonorID         *string    `json:"donorId"`
	DonorName       *string    `json:"donorName"`
	DonationDate    *time.Time `json:"donationDate"`
	CoverURL        *string    `json:"coverUrl"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type Member struct {
	Meta
	DisplayID       string    `json:"displayId" validate:"required"`
	LastName        string    `json:"lastName" validate:"required"`
	FirstName       string    `json:"firstName" validate:"required"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email" validate:"omitempty,email"`
	AuthUID         *string   `json:"authUid"`
	Role            Role      `json:"role" validate:"required,oneof=member admin"`
	Credits         int       `json:"credits"`
	TotalDonations  int       `json:"totalDonations" validate:"min=0"`
	BooksCheckedOut int       `json:"booksCheckedOut" validate:"min=0"`
	IsActive        bool      `json:"isActive"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (m Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

type Hold struct {
	Meta
	BookID      string     `json:"bookId" validate:"required"`
	BookTitle   string     `json:"bookTitle"`
	BookDocID   string     `json:"bookDocId" validate:"required"`
	HolderID    string     `json:"holderId" validate:"required"`
	HolderName  string     `json:"holderName"`
	HolderDocID string     `json:"holderDocId" validate:"required"`
	HoldDate    time.Time  `json:"holdDate"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	Status      HoldStatus `json:"status" validate:"required,oneof=active fulfilled cancelled expired"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type PickupWindow struct {
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

type CheckoutRequest struct {
	Meta
	BookID              string         `json:"bookId" validate:"required"`
	BookTitle           string         `json:"bookTitle"`
	BookDocID           string         `json:"bookDocId" validate:"required"`
	RequesterID         string         `json:"requesterId" validate:"required"`
	RequesterName       string         `json:"requesterName"`
	RequesterDocID      string         `json:"requesterDocId" validate:"required"`
	Status              RequestStatus  `json:"status" validate:"required,oneof=pending approved scheduled completed cancelled"`
	RequestedAt         time.Time      `json:"requestedAt"`
	ReviewedAt          *time.Time     `json:"reviewedAt"`
	ReviewedBy          *string        `json:"reviewedBy"`
	PickupWindows       []PickupWindow `json:"pickupWindows"`
	SelectedWindowIndex *int           `json:"selectedWindowIndex"`
	PickupNotes         string         `json:"pickupNotes"`
	CompletedAt         *time.Time     `json:"completedAt"`
	TransactionID       *string        `json:"transactionId"`
	CreatedAt           time.Time      `json:"createdAt"`
}

// Open reports whether the request still occupies its book.
func (r CheckoutRequest) Open() bool {
	switch r.Status {
	case RequestPending, RequestApproved, RequestScheduled:
		return true
	}
	return false
}

type Transaction struct {
	Meta
	DisplayID           string     `json:"displayId" validate:"required"`
	BookID              string     `json:"bookId" validate:"required"`
	BookTitle           string     `json:"bookTitle"`
	BookDocID           string     `json:"bookDocId" validate:"required"`
	BorrowerID          string     `json:"borrowerId" validate:"required"`
	BorrowerName        string     `json:"borrowerName"`
	BorrowerDocID       string     `json:"borrowerDocId" validate:"required"`
	CheckoutDate        time.Time  `json:"checkoutDate"`
	DueDate             time.Time  `json:"dueDate"`
	CheckinDate         *time.Time `json:"checkinDate"`
	IsCheckedOut        bool       `json:"isCheckedOut"`
	DurationDays        *int       `json:"durationDays"`
	ConditionAtCheckout Condition  `json:"conditionAtCheckout" validate:"required,oneof=New 'Like New' 'Very Good' Good Fair Poor"`
	ConditionAtCheckin  *Condition `json:"conditionAtCheckin"`
	Notes               string     `json:"notes"`
	CreatedAt           time.Time  `json:"createdAt"`
}

type CalendarEvent struct {
	Meta
	CheckoutRequestID string    `json:"checkoutRequestId" validate:"required"`
	BookID            string    `json:"bookId"`
	BookTitle         string    `json:"bookTitle"`
	MemberID          string    `json:"memberId"`
	MemberName        string    `json:"memberName"`
	MemberDocID       string    `json:"memberDocId"`
	AdminID           string    `json:"adminId"`
	Date              string    `json:"date"`
	StartTime         string    `json:"startTime"`
	EndTime           string    `json:"endTime"`
	Type              string    `json:"type" validate:"required,eq=pickup"`
	CreatedAt         time.Time `json:"createdAt"`
}

type Notification struct {
	Meta
	RecipientID    string           `json:"recipientId" validate:"required"`
	RecipientDocID string           `json:"recipientDocId" validate:"required"`
	Type           NotificationType `json:"type" validate:"required,oneof=checkout_request request_approved request_cancelled window_selected general"`
	Title          string           `json:"title" validate:"required"`
	Message        string           `json:"message"`
	LinkTo         *string          `json:"linkTo"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"createdAt"`
}

type Settings struct {
	Meta
	CheckoutDurationDays int `json:"checkoutDurationDays" validate:"min=1"`
	MaxBooksPerMember    int `json:"maxBooksPerMember" validate:"min=1"`
	CreditCostCheckout   int `json:"creditCostCheckout" validate:"min=0"`
	CreditRewardDonation int `json:"creditRewardDonation" validate:"min=0"`
	NextBookID           int64 `json:"nextBookId" validate:"min=1"`
	NextMemberID         int64 `json:"nextMemberId" validate:"min=1"`
	NextTransactionID    int64 `json:"nextTransactionId" validate:"min=1"`
}

func DefaultSettings() Settings {
	return Settings{
		CheckoutDurationDays: 21,
		MaxBooksPerMember:    1,
		CreditCostCheckout:   1,
		CreditRewardDonation: 1,
		NextBookID:           1,
		NextMemberID:         1,
		NextTransactionID:    1,
	}
}
