package stylist

import (
	"fmt"

	"github.com/styloai/stylo-backend/models"
)

// The synthesis prompts use directive photo-editing language. The provider
// tends to echo the subject image back unchanged unless told, explicitly and
// repeatedly, that the old garment must be gone.

const garmentSwapContextTemplate = `CLOTHING SWAP TASK - This is a photo editing operation where you REPLACE clothing.

SOURCE: First image (person's reference photo)
CLOTHING REFERENCE: Second image (product photo showing the clothing item)
PRODUCT: %s

YOUR TASK IS TO PERFORM A VIRTUAL TRY-ON / CLOTHING REPLACEMENT:

STEP 1 - IDENTIFY THE CLOTHING:
Look at the second image and identify the specific clothing item (shirt, jacket, dress, suit, hoodie, etc.). If there's a model wearing it, focus ONLY on the garment itself - ignore the model's body, face, and pose.

STEP 2 - REMOVE OLD CLOTHING:
Digitally remove or replace the clothing that the person is currently wearing in the first image.

STEP 3 - APPLY NEW CLOTHING:
Place the clothing from the second image onto the person in the first image. This is like Photoshop's clothing swap - the NEW clothing must now be on their body:
- Match the exact color, pattern, texture, and style from the second image
- Make it fit their body shape and pose naturally
- Blend it seamlessly so it looks like they're actually wearing it
- Ensure proper shadows, wrinkles, and fabric draping for realism

STEP 4 - PRESERVE EVERYTHING ELSE:
Keep ABSOLUTELY EVERYTHING else from the first image unchanged:
- Same background
- Same pose and body position
- Same face and features
- Same camera angle
- Same lighting (just adapt it to show the new clothing)

VERIFICATION - The output must clearly show:
- The person IS wearing the clothing from the second image
- The clothing color/style matches the second image
- Everything else (background, face, pose) matches the first image
- DO NOT return the original first image unchanged
- DO NOT keep the old clothing

Think of this as: "Take the person from image 1, dress them in the clothing from image 2, keep everything else from image 1."

Generate this clothing swap now.`

const garmentSwapSimplePrompt = `CLOTHING SWAP TASK: Replace the person's clothing with the clothing from the second image.

STEPS:
1. Identify the clothing item in the second image
2. Remove the person's current clothing in the first image
3. Put the new clothing on the person
4. Keep everything else (background, face, pose) the same

The person MUST be wearing the NEW clothing in the output. This is a virtual try-on.`

// buildGarmentSwapPrompt picks the product-context variant when brand
// metadata is available and the simplified variant otherwise.
func buildGarmentSwapPrompt(product *models.ProductInfo) string {
	if product == nil {
		return garmentSwapSimplePrompt
	}
	brand := product.Brand
	if brand == "" {
		brand = "Unknown brand"
	}
	return fmt.Sprintf(garmentSwapContextTemplate, brand)
}

const referenceWithExemplarPrompt = `PHOTO EDITING TASK - Create a clean, professional reference photo:
SOURCE IMAGE: First image (user's uploaded photo)
STYLE REFERENCE: Second image (the target style to match - this is the EXACT pose you need to replicate)
YOUR TASK:
1. Extract the person from the first image
2. Create a clean, professional portrait matching the EXACT style and pose of the second image:
   - Make sure the background is completely white and has no shadows
   - Person centered in frame
   - Full body visible (head to feet or at least to knees)
   - CRITICAL: Arms must be LIFTED SLIGHTLY OUT TO THE SIDES (like an A-pose or game character reference pose)
   - CRITICAL: Look at the reference image - replicate this EXACT arm position with arms raised slightly away from body
   - Neutral, straight-on pose facing camera directly
   - Standing straight and upright
   - Good lighting, professional photo quality
   - Remove any background objects, clutter, or distractions
   - Keep the person's clothing, face, and features exactly as they are
   - Professional studio-quality portrait
IMPORTANT POSE REQUIREMENTS:
- Arms: LIFTED SLIGHTLY TO THE SIDES at approximately 20-30 degrees from body (like a game avatar T-pose/A-pose)
- Arms should be extended out to sides, NOT hanging down, NOT crossed, NOT in pockets
- This creates space between arms and torso - essential for clothing visualization
- Body: Facing forward, centered, standing straight
- Hands: Relaxed, fingers extended naturally
- Feet: Slightly apart, natural standing position
- Head: Looking directly at camera
- Background: Pure white with no shadows
- Lighting: Even and professional
- Person should be in sharp focus
This is for use as a reference photo for virtual try-on - the slightly lifted arm position (like a game character reference) is CRITICAL for proper clothing visualization.
Generate this clean reference photo now with arms lifted slightly to the sides.`

const referenceBackgroundOnlyPrompt = `PHOTO EDITING TASK - Clean up this photo's background:
SOURCE IMAGE: The uploaded photo of a person.
YOUR TASK:
1. Replace the background with a pure white background, no shadows
2. Center the person in the frame
3. Remove any background objects, clutter, or distractions
DO NOT change the person in ANY way:
- Same pose and body position
- Same facial expression
- Same clothing
- Same body shape
- Same features
Only the background changes. Generate the cleaned photo now.`
