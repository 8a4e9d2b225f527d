// Package cart holds in-progress shopper selections in process memory.
// State is scoped to the session by construction: a restart (like a page
// reload in the original storefront) empties every cart and wishlist.
package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

var ErrItemNotFound = errors.New("item not in cart")

// sessionTTL bounds how long an idle shopper's selections survive.
const sessionTTL = 12 * time.Hour

const maxSessions = 10000

type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Image     string  `json:"image,omitempty"`
	Variant   string  `json:"variant,omitempty"`
}

type WishItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}

type session struct {
	cart     []Item
	wishlist []WishItem
}

type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *session]
}

func NewStore() *Store {
	return &Store{
		sessions: expirable.NewLRU[string, *session](maxSessions, nil, sessionTTL),
	}
}

func (s *Store) get(userID string) *session {
	sess, ok := s.sessions.Get(userID)
	if !ok {
		sess = &session{}
		s.sessions.Add(userID, sess)
	}
	return sess
}

// AddToCart appends the item, or bumps the quantity by exactly 1 when the
// product is already present.
func (s *Store) AddToCart(userID string, item Item) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.get(userID)
	for i := range sess.cart {
		if sess.cart[i].ProductID == item.ProductID {
			sess.cart[i].Quantity++
			return cloneItems(sess.cart)
		}
	}

	item.Quantity = 1
	sess.cart = append(sess.cart, item)
	return cloneItems(sess.cart)
}

// UpdateQuantity sets the quantity, clamped to a floor of 1. Removing an
// item is an explicit operation, not a side effect of decrementing.
func (s *Store) UpdateQuantity(userID, productID string, quantity int) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.get(userID)
	for i := range sess.cart {
		if sess.cart[i].ProductID == productID {
			if quantity < 1 {
				quantity = 1
			}
			sess.cart[i].Quantity = quantity
			return cloneItems(sess.cart), nil
		}
	}
	return nil, ErrItemNotFound
}

func (s *Store) RemoveFromCart(userID, productID string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.get(userID)
	for i := range sess.cart {
		if sess.cart[i].ProductID == productID {
			sess.cart = append(sess.cart[:i], sess.cart[i+1:]...)
			return cloneItems(sess.cart), nil
		}
	}
	return nil, ErrItemNotFound
}

func (s *Store) Cart(userID string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.get(userID).cart)
}

// ClearCart empties the cart, typically after a successful checkout.
func (s *Store) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID).cart = nil
}

// AddToWishlist appends the item unless it is already wished; duplicates are
// a no-op and reported via the return value.
func (s *Store) AddToWishlist(userID string, item WishItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.get(userID)
	for _, w := range sess.wishlist {
		if w.ProductID == item.ProductID {
			return false
		}
	}
	sess.wishlist = append(sess.wishlist, item)
	return true
}

func (s *Store) RemoveFromWishlist(userID, productID string) ([]WishItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.get(userID)
	for i := range sess.wishlist {
		if sess.wishlist[i].ProductID == productID {
			sess.wishlist = append(sess.wishlist[:i], sess.wishlist[i+1:]...)
			return cloneWishlist(sess.wishlist), nil
		}
	}
	return nil, ErrItemNotFound
}

func (s *Store) Wishlist(userID string) []WishItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneWishlist(s.get(userID).wishlist)
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func cloneWishlist(items []WishItem) []WishItem {
	out := make([]WishItem, len(items))
	copy(out, items)
	return out
}
