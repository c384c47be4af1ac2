package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

func (a *App) readID() (int64, error) {
	s, err := GetSimpleText(a.reader, "Enter diary id", os.Stdout)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(s, 10, 64)
}

func (a *App) Show(ctx context.Context) error {
	id, err := a.readID()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	diary, err := a.api.GetDiary(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	fmt.Printf("#%d %s (%s)\n%s\n", diary.ID, diary.Title, diary.CreatedAt.Format("2006-01-02 15:04"), diary.Content)
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := a.readID()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.api.DeleteDiary(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}

	log.Printf("Deleted, id=%d", id)
	return nil
}
