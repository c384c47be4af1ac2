package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Register(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	user, err := a.api.Register(ctx, email, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Registered, id=%d. Use 'login' to sign in.", user.ID)
	return nil
}
