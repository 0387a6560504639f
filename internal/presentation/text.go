package presentation

import (
	"fmt"
	"io"
)

// textRenderer writes the classic "name, sellIn, quality" listing.
type textRenderer struct {
	w      io.Writer
	banner bool
}

func (r *textRenderer) Start() error {
	if !r.banner {
		return nil
	}
	_, err := fmt.Fprintln(r.w, Banner)
	return err
}

func (r *textRenderer) Day(day DayDTO) error {
	if _, err := fmt.Fprintf(r.w, "-------- day %d --------\n", day.Day); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w, "name, sellIn, quality"); err != nil {
		return err
	}
	for _, item := range day.Items {
		if _, err := fmt.Fprintf(r.w, "%s, %d, %d\n", item.Name, item.SellIn, item.Quality); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w)
	return err
}

func (r *textRenderer) Arrival(_ int, item ItemDTO) error {
	_, err := fmt.Fprintf(r.w, "Added new item: %s\n", item.Name)
	return err
}

func (r *textRenderer) Close() error {
	return nil
}
