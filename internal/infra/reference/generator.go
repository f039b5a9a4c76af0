// Package reference issues human-shareable booking references.
package reference

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"

	"github.com/docaid/DocAid-BookingService/internal/domain"
)

const hexChars = 8

// Generator выдаёт номера вида REF-1A2B3C4D (DEMO-... в демо-режиме)
type Generator struct {
	newUUID func() uuid.UUID
}

// NewGenerator создаёт генератор на основе случайных UUID v4
func NewGenerator() *Generator {
	return &Generator{newUUID: uuid.New}
}

// NewReference возвращает новый номер бронирования
func (g *Generator) NewReference(demo bool) string {
	prefix := domain.ReferencePrefix
	if demo {
		prefix = domain.DemoReferencePrefix
	}

	id := g.newUUID()
	return prefix + "-" + strings.ToUpper(hex.EncodeToString(id[:])[:hexChars])
}
