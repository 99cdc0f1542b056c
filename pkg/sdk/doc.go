// Package cmsdash is an embeddable Go client for the cmsdash content store.
//
// It runs the same services as the HTTP server in-process, against Redis or
// Valkey:
//
//	client, _ := cmsdash.New(ctx, cmsdash.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	hero, _ := client.Components().Create(ctx, cmsdash.ComponentInput{
//	    Name: "Hero Banner", Category: "layout",
//	})
//	page, _ := client.Pages().Create(ctx, cmsdash.PageInput{
//	    Title: "About Us", ComponentIDs: []string{hero.ID},
//	})
//	res, _ := client.Pages().List(ctx, cmsdash.ListOptions{Search: "about", Limit: 10})
//	stats, _ := client.Stats().Get(ctx)
package cmsdash
