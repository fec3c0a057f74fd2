package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/palettehq/marketplace-sync/internal/domain"
	"github.com/palettehq/marketplace-sync/internal/store/schema"
)

// ResolveOrCreateUserByAddress resolves a single chain address to an internal
// user, creating one when the address was never seen
func (s *pgStore) ResolveOrCreateUserByAddress(ctx context.Context, address string) (*schema.User, error) {
	users, err := s.ResolveUsersByAddresses(ctx, []string{address})
	if err != nil {
		return nil, err
	}

	user, ok := users[domain.NormalizeAddress(address)]
	if !ok {
		return nil, fmt.Errorf("failed to resolve user for address %s", address)
	}

	return user, nil
}

// ResolveUsersByAddresses resolves many addresses in one round trip. Unseen
// addresses get a user created for them; concurrent creates of the same
// address converge on the first inserted row.
func (s *pgStore) ResolveUsersByAddresses(ctx context.Context, addresses []string) (map[string]*schema.User, error) {
	normalized := make([]string, 0, len(addresses))
	seen := make(map[string]struct{}, len(addresses))
	for _, addr := range addresses {
		n := domain.NormalizeAddress(addr)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}

	result := make(map[string]*schema.User, len(normalized))
	if len(normalized) == 0 {
		return result, nil
	}

	var existing []schema.User
	err := s.db.WithContext(ctx).
		Where("eth_address IN ?", normalized).
		Find(&existing).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	for i := range existing {
		result[existing[i].EthAddress] = &existing[i]
	}

	var missing []schema.User
	for _, addr := range normalized {
		if _, ok := result[addr]; ok {
			continue
		}
		missing = append(missing, schema.User{
			ID:         uuid.NewString(),
			EthAddress: addr,
		})
	}
	if len(missing) == 0 {
		return result, nil
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "eth_address"}},
		DoNothing: true,
	}).Create(&missing).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create users: %w", err)
	}

	// Re-read so a concurrent insert that won the conflict is what we return
	var created []schema.User
	addrs := make([]string, 0, len(missing))
	for _, u := range missing {
		addrs = append(addrs, u.EthAddress)
	}
	err = s.db.WithContext(ctx).
		Where("eth_address IN ?", addrs).
		Find(&created).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get created users: %w", err)
	}
	for i := range created {
		result[created[i].EthAddress] = &created[i]
	}

	return result, nil
}
