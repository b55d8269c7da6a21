package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/sohans1092004/Youtube-Backend-project/internal/domain/model"
)

// stage builds a single pipeline stage {name: value}.
func stage(name string, value any) bson.D {
	return bson.D{{Key: name, Value: value}}
}

// lookup joins from.foreignField == localField into the array field as.
// An optional sub-pipeline shapes the joined documents.
func lookup(from, localField, foreignField, as string, pipeline ...bson.D) bson.D {
	body := bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}
	if len(pipeline) > 0 {
		sub := make(bson.A, 0, len(pipeline))
		for _, s := range pipeline {
			sub = append(sub, s)
		}
		body = append(body, bson.E{Key: "pipeline", Value: sub})
	}
	return stage("$lookup", body)
}

// include projects the named fields.
func include(fields ...string) bson.D {
	proj := make(bson.D, 0, len(fields))
	for _, f := range fields {
		proj = append(proj, bson.E{Key: f, Value: 1})
	}
	return stage("$project", proj)
}

// userSummaryFields is the public profile projected into joined read models.
var userSummaryFields = []string{"username", "fullname", "avatar", "email"}

// commentFeedPipeline builds the paginated comment feed of a video: author
// details and like count joined in, newest first.
func commentFeedPipeline(videoID bson.ObjectID, page model.Page) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.D{{Key: "video", Value: videoID}}),
		lookup(CollectionUsers, "owner", "_id", "details",
			include("fullname", "avatar", "username"),
		),
		lookup(CollectionLikes, "_id", "comment", "likes"),
		stage("$addFields", bson.D{
			{Key: "details", Value: bson.D{{Key: "$first", Value: "$details"}}},
			{Key: "likes", Value: bson.D{{Key: "$size", Value: "$likes"}}},
		}),
		stage("$sort", bson.D{{Key: "createdAt", Value: -1}}),
		stage("$skip", page.Skip()),
		stage("$limit", page.Limit),
	}
}

// channelStatsPipeline sums the denormalized counters of an owner's videos.
// It yields no document when the owner has no videos.
func channelStatsPipeline(owner bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.D{{Key: "owner", Value: owner}}),
		stage("$group", bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalVideos", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
			{Key: "totalLikes", Value: bson.D{{Key: "$sum", Value: "$likes"}}},
		}),
	}
}

// channelVideoFields are the fields carried by every channel video entry.
var channelVideoFields = []string{
	"videoFile", "thumbnail", "title", "isPublished",
	"createdAt", "updatedAt", "owner", "description",
}

// channelVideosPipeline lists an owner's videos with live like counts,
// collapsed into one group that also carries the sum of those counts.
func channelVideosPipeline(owner bson.ObjectID) mongo.Pipeline {
	project := make(bson.D, 0, len(channelVideoFields)+1)
	push := bson.D{{Key: "_id", Value: "$_id"}}
	for _, f := range channelVideoFields {
		project = append(project, bson.E{Key: f, Value: 1})
		push = append(push, bson.E{Key: f, Value: "$" + f})
	}
	project = append(project, bson.E{Key: "likes", Value: bson.D{{Key: "$size", Value: "$likes"}}})
	push = append(push, bson.E{Key: "likes", Value: "$likes"})

	return mongo.Pipeline{
		stage("$match", bson.D{{Key: "owner", Value: owner}}),
		lookup(CollectionLikes, "_id", "video", "likes"),
		stage("$project", project),
		stage("$group", bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalLikes", Value: bson.D{{Key: "$sum", Value: "$likes"}}},
			{Key: "videos", Value: bson.D{{Key: "$push", Value: push}}},
		}),
	}
}

// titleFilter matches titles containing query, case-insensitively. The query
// is matched literally.
func titleFilter(query string) bson.Regex {
	return bson.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
}

// videoListingPipeline resolves a user and returns one sorted page of their
// videos regrouped under the user.
func videoListingPipeline(q model.VideoQuery) mongo.Pipeline {
	p := mongo.Pipeline{
		stage("$match", bson.D{{Key: "_id", Value: q.UserID}}),
		lookup(CollectionVideos, "_id", "owner", "videos"),
		stage("$unwind", "$videos"),
	}
	if q.Query != "" {
		p = append(p, stage("$match", bson.D{{Key: "videos.title", Value: titleFilter(q.Query)}}))
	}
	return append(p,
		stage("$sort", bson.D{{Key: "videos." + q.SortBy, Value: q.SortType.Direction()}}),
		stage("$skip", q.Page.Skip()),
		stage("$limit", q.Page.Limit),
		stage("$group", bson.D{
			{Key: "_id", Value: "$_id"},
			{Key: "videos", Value: bson.D{{Key: "$push", Value: "$videos"}}},
		}),
	)
}

// videoSearchFilter counts the same videos videoListingPipeline pages through.
func videoSearchFilter(q model.VideoQuery) bson.D {
	filter := bson.D{{Key: "owner", Value: q.UserID}}
	if q.Query != "" {
		filter = append(filter, bson.E{Key: "title", Value: titleFilter(q.Query)})
	}
	return filter
}

// likedVideosPipeline lists a user's video likes with a summary of each video.
func likedVideosPipeline(userID bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.D{
			{Key: "likedBy", Value: userID},
			{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}},
		}),
		lookup(CollectionVideos, "video", "_id", "video",
			include("title", "videoFile", "thumbnail"),
		),
		stage("$addFields", bson.D{{Key: "video", Value: bson.D{{Key: "$first", Value: "$video"}}}}),
		stage("$sort", bson.D{{Key: "createdAt", Value: -1}}),
	}
}

// playlistDetailPipeline expands a playlist's videos. The stored ID order is
// kept under videoIds so callers can restore playlist order.
func playlistDetailPipeline(id bson.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.D{{Key: "_id", Value: id}}),
		lookup(CollectionVideos, "videos", "_id", "videoDocs"),
		stage("$project", bson.D{
			{Key: "name", Value: 1},
			{Key: "description", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
			{Key: "videoIds", Value: "$videos"},
			{Key: "videos", Value: "$videoDocs"},
		}),
	}
}

// subscriptionEdgePipeline matches edges on matchField and joins the user on
// the other end of each edge into joinField.
func subscriptionEdgePipeline(matchField string, id bson.ObjectID, joinField string) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.D{{Key: matchField, Value: id}}),
		lookup(CollectionUsers, joinField, "_id", joinField, include(userSummaryFields...)),
		stage("$addFields", bson.D{{Key: joinField, Value: bson.D{{Key: "$first", Value: "$" + joinField}}}}),
		stage("$sort", bson.D{{Key: "createdAt", Value: -1}}),
	}
}

func subscribersPipeline(channel bson.ObjectID) mongo.Pipeline {
	return subscriptionEdgePipeline("channel", channel, "subscriber")
}

func subscribedChannelsPipeline(subscriber bson.ObjectID) mongo.Pipeline {
	return subscriptionEdgePipeline("subscriber", subscriber, "channel")
}
