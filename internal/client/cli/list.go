package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) List(ctx context.Context) error {
	page, err := a.api.ListDiaries(ctx, 1, 20)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, item := range page.Data {
		fmt.Printf("%d\t%s\t%s\n", item.ID, item.CreatedAt.Format("2006-01-02"), item.Title)
	}
	fmt.Printf("total: %d\n", page.Total)
	return nil
}

func (a *App) Search(ctx context.Context) error {
	keyword, err := GetSimpleText(a.reader, "Enter keyword", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	page, err := a.api.SearchDiaries(ctx, keyword, 1, 20)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, item := range page.Data {
		fmt.Printf("%d\t%s\t%s\n", item.ID, item.CreatedAt.Format("2006-01-02"), item.Title)
	}
	fmt.Printf("total: %d\n", page.Total)
	return nil
}
