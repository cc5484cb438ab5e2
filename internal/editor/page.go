// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"context"
	"fmt"

	"staticcms/internal/blocks"
	"staticcms/internal/models"
)

// PageSession edits one page.
type PageSession struct {
	lifecycle
	api  PageAPI
	page models.Page
}

// NewPageSession starts a session on a blank draft page.
func NewPageSession(api PageAPI) *PageSession {
	return &PageSession{api: api, page: models.NewPage()}
}

// Page returns a copy of the current page.
func (s *PageSession) Page() models.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.Clone()
}

// State reports Draft or Saved.
func (s *PageSession) State() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.State()
}

// Load replaces the session's page with the stored page id. Blocks missing
// keys of their kind's defaults get them filled in. On error the current page
// is left as it was.
func (s *PageSession) Load(ctx context.Context, id models.ID) error {
	if s.Closed() {
		return ErrClosed
	}
	p, err := s.api.GetPage(ctx, id)
	if err != nil {
		return fmt.Errorf("load page %s: %w", id, err)
	}

	filled := make([]blocks.Block, len(p.Blocks))
	for i, b := range p.Blocks {
		filled[i] = blocks.WithDefaults(b)
	}
	p.Blocks = filled

	return s.replace(func() {
		s.page = p
	})
}

// Save creates the page when it is a draft and updates it otherwise. On
// success the server-assigned id, slug and timestamps are adopted; content
// edited while the request was in flight is kept. If Load replaced the page
// meanwhile, the saved page is returned and the session is left alone. On
// error nothing changes.
func (s *PageSession) Save(ctx context.Context) (models.Page, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return models.Page{}, ErrClosed
	}
	id := s.page.ID
	gen := s.gen
	payload := s.page.Payload()
	s.mu.Unlock()

	var (
		saved models.Page
		err   error
	)
	if id.IsZero() {
		saved, err = s.api.CreatePage(ctx, payload)
	} else {
		saved, err = s.api.UpdatePage(ctx, id, payload)
	}
	if err != nil {
		return models.Page{}, fmt.Errorf("save page: %w", err)
	}

	var out models.Page
	err = s.edit(func() error {
		if s.gen != gen {
			out = saved
			return nil
		}
		s.page.ID = saved.ID
		s.page.Slug = saved.Slug
		s.page.CreatedAt = saved.CreatedAt
		s.page.UpdatedAt = saved.UpdatedAt
		out = s.page.Clone()
		return nil
	})
	return out, err
}

// SetTitle sets the page title.
func (s *PageSession) SetTitle(title string) error {
	return s.edit(func() error {
		s.page.Title = title
		return nil
	})
}

// SetMetaDescription sets the SEO description.
func (s *PageSession) SetMetaDescription(desc string) error {
	return s.edit(func() error {
		s.page.MetaDescription = desc
		return nil
	})
}

// SetPublished toggles publication.
func (s *PageSession) SetPublished(v bool) error {
	return s.edit(func() error {
		s.page.IsPublished = v
		return nil
	})
}

// SetHomepage toggles the homepage flag.
func (s *PageSession) SetHomepage(v bool) error {
	return s.edit(func() error {
		s.page.IsHomepage = v
		return nil
	})
}

// InsertBlock appends a new block of kind k and returns its id.
func (s *PageSession) InsertBlock(k blocks.Kind) (string, error) {
	var id string
	err := s.edit(func() error {
		seq, newID, err := blocks.Insert(s.page.Blocks, k)
		if err != nil {
			return err
		}
		s.page.Blocks, id = seq, newID
		return nil
	})
	return id, err
}

// RemoveBlock deletes the block with the given id.
func (s *PageSession) RemoveBlock(id string) error {
	return s.edit(func() error {
		seq, err := blocks.Remove(s.page.Blocks, id)
		if err != nil {
			return err
		}
		s.page.Blocks = seq
		return nil
	})
}

// MoveBlock shifts the block at index one position in dir.
func (s *PageSession) MoveBlock(index int, dir blocks.Direction) error {
	return s.edit(func() error {
		seq, err := blocks.Move(s.page.Blocks, index, dir)
		if err != nil {
			return err
		}
		s.page.Blocks = seq
		return nil
	})
}

// UpdateBlockData replaces a block's data wholesale.
func (s *PageSession) UpdateBlockData(id string, data blocks.Data) error {
	return s.edit(func() error {
		seq, err := blocks.UpdateData(s.page.Blocks, id, data)
		if err != nil {
			return err
		}
		s.page.Blocks = seq
		return nil
	})
}

// SetBlockField sets one top-level key of a block's data.
func (s *PageSession) SetBlockField(id, key string, value any) error {
	return s.editBlock(id, func(b blocks.Block) (blocks.Data, error) {
		return blocks.SetField(b.Data, key, value), nil
	})
}

// AppendBlockItem appends the kind's item template to a collection field.
func (s *PageSession) AppendBlockItem(id, field string) error {
	return s.editBlock(id, func(b blocks.Block) (blocks.Data, error) {
		return blocks.AppendItem(b.Type, b.Data, field)
	})
}

// RemoveBlockItem deletes item index from a collection field.
func (s *PageSession) RemoveBlockItem(id, field string, index int) error {
	return s.editBlock(id, func(b blocks.Block) (blocks.Data, error) {
		return blocks.RemoveItem(b.Data, field, index)
	})
}

// MoveBlockItem shifts an item of a collection field one position in dir.
func (s *PageSession) MoveBlockItem(id, field string, index int, dir blocks.Direction) error {
	return s.editBlock(id, func(b blocks.Block) (blocks.Data, error) {
		return blocks.MoveItem(b.Data, field, index, dir)
	})
}

// SetBlockItemField sets key on item index of a collection field.
func (s *PageSession) SetBlockItemField(id, field string, index int, key string, value any) error {
	return s.editBlock(id, func(b blocks.Block) (blocks.Data, error) {
		return blocks.SetItemField(b.Data, field, index, key, value)
	})
}

func (s *PageSession) editBlock(id string, fn func(blocks.Block) (blocks.Data, error)) error {
	return s.edit(func() error {
		b, err := blocks.Find(s.page.Blocks, id)
		if err != nil {
			return err
		}
		data, err := fn(b)
		if err != nil {
			return err
		}
		seq, err := blocks.UpdateData(s.page.Blocks, id, data)
		if err != nil {
			return err
		}
		s.page.Blocks = seq
		return nil
	})
}
