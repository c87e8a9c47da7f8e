package biddingerrors

import "errors"

// Repository-level errors
var (
	ErrNoBids          = errors.New("no bids found for auction")
	ErrGroupNotFound   = errors.New("group not found")
	ErrOfferNotFound   = errors.New("no pending second-chance offer found")
	ErrDetailsNotFound = errors.New("group details not found")
)

// business logic errors
var (
	ErrInvalidBid         = errors.New("invalid bid")
	ErrWrongCapacity      = errors.New("wrong room capacity for this operation")
	ErrAuctionEnded       = errors.New("bidding has ended")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrInsufficientTokens = errors.New("not enough tokens")
	ErrGroupExists        = errors.New("group already started for this room and time")
	ErrGroupFull          = errors.New("group is full")
	ErrAlreadyMember      = errors.New("already a member of this group")
	ErrNotMember          = errors.New("not a member of this group")
	ErrNotOwner           = errors.New("only the group owner may do this")
	ErrSecondChanceFrozen = errors.New("second-chance group bids cannot be changed")
	ErrCancelTooLate      = errors.New("cancellation window has closed")
	ErrNotWinner          = errors.New("not the current winner for this reservation")
)
