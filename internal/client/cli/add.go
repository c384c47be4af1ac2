package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Add(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	content, err := GetMultiline(a.reader, "Enter content", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	diary, err := a.api.CreateDiary(ctx, title, content)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	log.Printf("Saved, id=%d", diary.ID)
	return nil
}
